/*
File    : barescript/ast/ast_yaml.go

Implements the canonical document form: each Statement and each Expression
marshals as a single-key mapping whose key is its tagged variant name and
whose value holds its fields. This is what backs `scriptparse parse` (see
cmd/scriptparse) and lets gopkg.in/yaml.v3 marshal a Script as a generic
tree of strings, numbers, booleans, sequences, and mappings. Only the
encoding direction exists: there is no UnmarshalYAML, so YAML is not decoded
back into a Script.
*/
package ast

// MarshalYAML renders a Script as a plain sequence of tagged statements —
// there is no "script" wrapper key; Script is just an ordered list of
// statements.
func (s *Script) MarshalYAML() (interface{}, error) {
	return s.Statements, nil
}

func (s *ExprStatement) MarshalYAML() (interface{}, error) {
	body := map[string]interface{}{"expr": s.Expr}
	if s.Name != "" {
		body["name"] = s.Name
	}
	return tagged("expr", body), nil
}

func (s *FunctionStatement) MarshalYAML() (interface{}, error) {
	body := map[string]interface{}{
		"name":       s.Name,
		"args":       identifiersOrEmpty(s.Args),
		"statements": statementsOrEmpty(s.Statements),
	}
	if s.Async {
		body["async"] = true
	}
	return tagged("function", body), nil
}

func (s *LabelStatement) MarshalYAML() (interface{}, error) {
	return tagged("label", s.Name), nil
}

func (s *JumpStatement) MarshalYAML() (interface{}, error) {
	body := map[string]interface{}{"label": s.Label}
	if s.Expr != nil {
		body["expr"] = s.Expr
	}
	return tagged("jump", body), nil
}

func (s *ReturnStatement) MarshalYAML() (interface{}, error) {
	body := map[string]interface{}{}
	if s.Expr != nil {
		body["expr"] = s.Expr
	}
	return tagged("return", body), nil
}

func (s *IncludeStatement) MarshalYAML() (interface{}, error) {
	return tagged("include", s.URL), nil
}

func (e *NumberExpr) MarshalYAML() (interface{}, error) {
	return tagged("number", e.Value), nil
}

func (e *StringExpr) MarshalYAML() (interface{}, error) {
	return tagged("string", e.Value), nil
}

func (e *VariableExpr) MarshalYAML() (interface{}, error) {
	return tagged("variable", e.Name), nil
}

func (e *GroupExpr) MarshalYAML() (interface{}, error) {
	return tagged("group", e.Expr), nil
}

func (e *UnaryExpr) MarshalYAML() (interface{}, error) {
	return tagged("unary", map[string]interface{}{
		"op":   string(e.Op),
		"expr": e.Expr,
	}), nil
}

func (e *BinaryExpr) MarshalYAML() (interface{}, error) {
	return tagged("binary", map[string]interface{}{
		"op":    string(e.Op),
		"left":  e.Left,
		"right": e.Right,
	}), nil
}

func (e *CallExpr) MarshalYAML() (interface{}, error) {
	return tagged("function", map[string]interface{}{
		"name": e.Name,
		"args": expressionsOrEmpty(e.Args),
	}), nil
}

// tagged wraps value under a single key, the variant's tag name.
func tagged(key string, value interface{}) map[string]interface{} {
	return map[string]interface{}{key: value}
}

func identifiersOrEmpty(ids []Identifier) []Identifier {
	if ids == nil {
		return []Identifier{}
	}
	return ids
}

func statementsOrEmpty(stmts []Statement) []Statement {
	if stmts == nil {
		return []Statement{}
	}
	return stmts
}

func expressionsOrEmpty(exprs []Expression) []Expression {
	if exprs == nil {
		return []Expression{}
	}
	return exprs
}
