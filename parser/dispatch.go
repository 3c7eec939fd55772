/*
File    : barescript/parser/dispatch.go

dispatch tests an effective line against a fixed, ordered sequence of line
patterns, first match wins, and delegates to the matching case's handler.
The individual handlers live alongside their related constructs: assignment
and the bare-expression fallthrough in assignment.go, function begin/end in
functions.go, if/else-if/else/endif in conditionals.go, while/endwhile in
loops.go, foreach/endforeach in foreach.go, break/continue in controls.go, and
label/jump/return/include in jumps.go.
*/
package parser

func (p *Parser) dispatch(line effectiveLine) error {
	text := line.text

	if commentOrBlankPattern.MatchString(text) {
		return nil
	}
	// A line whose first "=" is immediately followed by another "=" is a
	// bare comparison expression ("x == y"), not an assignment — the
	// assignment pattern's single literal "=" would otherwise also match the
	// first character of "==". Guard it here rather than with a lookahead,
	// since RE2 (package regexp) has none.
	if m := assignmentPattern.FindStringSubmatchIndex(text); m != nil && !startsWithEquals(text, m[4]) {
		return p.dispatchAssignment(line, m)
	}
	if m := functionBeginPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchFunctionBegin(line, m)
	}
	if functionEndPattern.MatchString(text) {
		return p.dispatchFunctionEnd(line)
	}
	if m := ifBeginPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchIfBegin(line, m)
	}
	if m := elseIfPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchElseIf(line, m)
	}
	if elseThenPattern.MatchString(text) {
		return p.dispatchElseThen(line)
	}
	if endifPattern.MatchString(text) {
		return p.dispatchEndif(line)
	}
	if m := whileBeginPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchWhileBegin(line, m)
	}
	if endwhilePattern.MatchString(text) {
		return p.dispatchEndwhile(line)
	}
	if m := foreachBeginPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchForeachBegin(line, m)
	}
	if endforeachPattern.MatchString(text) {
		return p.dispatchEndforeach(line)
	}
	if breakPattern.MatchString(text) {
		return p.dispatchBreak(line)
	}
	if continuePattern.MatchString(text) {
		return p.dispatchContinue(line)
	}
	if m := labelPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchLabel(line, m)
	}
	if m := jumpPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchJump(line, m)
	}
	if m := jumpIfPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchJumpIf(line, m)
	}
	if m := returnPattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchReturn(line, m)
	}
	if m := includeSinglePattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchInclude(line, m, '\'')
	}
	if m := includeDoublePattern.FindStringSubmatchIndex(text); m != nil {
		return p.dispatchInclude(line, m, '"')
	}
	return p.dispatchFallthrough(line)
}

// startsWithEquals reports whether text[pos] is '=' — used to detect that an
// assignment-pattern match actually landed on the first '=' of a "==".
func startsWithEquals(text string, pos int) bool {
	return pos < len(text) && text[pos] == '='
}
