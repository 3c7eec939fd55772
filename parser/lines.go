/*
File    : barescript/parser/lines.go

Line splitting and continuation joining. Adapted from go-mix's token-stream
lexer (lexer/lexer.go splits on a rune cursor); this module is
line-oriented instead of character-oriented, so splitting happens on whole
physical lines rather than runes.
*/
package parser

import (
	"regexp"
	"strings"
)

var newlinePattern = regexp.MustCompile(`\r?\n`)

// continuationPattern matches a line ending in a backslash, optionally
// followed by trailing whitespace.
var continuationPattern = regexp.MustCompile(`\\\s*$`)

// physicalLine is one raw source line together with its zero-based index in
// the flattened sequence of all blobs passed to ParseScript.
type physicalLine struct {
	text  string
	index int
}

// splitBlobs flattens an ordered sequence of text blobs into one ordered
// list of physical lines. Splitting happens per blob (each blob's own
// newlines, via newlinePattern) and the results are concatenated in order,
// so a line index is contiguous across blob boundaries even though each
// blob's own newlines are split independently.
func splitBlobs(blobs []string) []physicalLine {
	var lines []physicalLine
	idx := 0
	for _, blob := range blobs {
		for _, raw := range newlinePattern.Split(blob, -1) {
			lines = append(lines, physicalLine{text: raw, index: idx})
			idx++
		}
	}
	return lines
}

// effectiveLine is the result of joining a run of continuation lines: the
// joined text, and the index of the FIRST physical line in the run — a
// continued statement always reports errors against that first line.
type effectiveLine struct {
	text  string
	index int
}

// joinContinuations walks lines and merges any run ending in a continuation
// backslash into a single effectiveLine: the first fragment is right-trimmed
// only, later fragments are fully trimmed, and fragments join with a single
// space.
func joinContinuations(lines []physicalLine) []effectiveLine {
	var out []effectiveLine
	i := 0
	for i < len(lines) {
		first := lines[i]
		if !continuationPattern.MatchString(first.text) {
			out = append(out, effectiveLine{text: first.text, index: first.index})
			i++
			continue
		}

		joined := rightTrim(stripContinuation(first.text))
		firstIndex := first.index
		i++
		for i < len(lines) {
			frag := lines[i]
			cont := continuationPattern.MatchString(frag.text)
			piece := strings.TrimSpace(stripContinuation(frag.text))
			joined += " " + piece
			i++
			if !cont {
				break
			}
		}
		out = append(out, effectiveLine{text: joined, index: firstIndex})
	}
	return out
}

// stripContinuation removes a trailing backslash and any whitespace after
// it.
func stripContinuation(s string) string {
	return continuationPattern.ReplaceAllString(s, "")
}

func rightTrim(s string) string {
	return strings.TrimRight(s, " \t")
}
