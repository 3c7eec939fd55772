package perror_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barescript-go/barescript/perror"
)

func TestRenderBasic(t *testing.T) {
	err := perror.New("Syntax error", "x = 1 + * 2", 9)
	got := err.Render()
	want := "Syntax error:\nx = 1 + * 2\n        ^"
	assert.Equal(t, want, got)
}

func TestRenderWithLineNumberAndPrefix(t *testing.T) {
	err := perror.New("Missing endwhile statement", "while true do", 1).
		WithLineNumber(4).
		WithPrefix("while parsing script.txt")
	got := err.Render()
	assert.True(t, strings.HasPrefix(got, "while parsing script.txt\n"))
	assert.Contains(t, got, "Missing endwhile statement, line number 4:")
	assert.Contains(t, got, "while true do")
}

func TestWithColumnOffset(t *testing.T) {
	inner := perror.New("Syntax error", "1 + * 2", 5)
	outer := inner.WithColumnOffset(4)
	assert.Equal(t, 9, outer.ColumnNumber)
}

func TestRenderTruncatesLongLines(t *testing.T) {
	line := strings.Repeat("a", 80) + "!" + strings.Repeat("b", 80)
	column := 81 // the '!' character
	err := perror.New("Syntax error", line, column)
	got := err.Render()

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rendered lines, got %d: %q", len(lines), got)
	}
	rendered := lines[1]
	caret := lines[2]

	assert.True(t, strings.HasPrefix(rendered, "... "))
	assert.True(t, strings.HasSuffix(rendered, " ..."))
	assert.LessOrEqual(t, len(rendered), 120+len("... ")+len(" ..."))

	// The caret must still point at the '!' in the truncated window.
	assert.Equal(t, byte('!'), rendered[len(caret)-1])
}

func TestErrorInterface(t *testing.T) {
	var err error = perror.New("Syntax error", "x", 1)
	assert.Equal(t, "Syntax error:\nx\n^", err.Error())
}
