package graph

import "strings"

// blockMark delimits block comments. Unlike `#` comments it can span
// lines, so the scanner threads a commentState through the document.
const blockMark = `"""`

type commentState int8

const (
	stateLive commentState = iota
	stateComment
)

// next classifies one trimmed line and returns the state in effect after
// it. live is true only when the line can contribute content: lines
// starting with `#`, lines inside an open block comment and lines that
// carry a block delimiter are all ignorable. Delimiters are counted, so
// an open and close pair on the same line leaves the state unchanged.
func (s commentState) next(line string) (live bool, after commentState) {
	if strings.HasPrefix(line, "#") {
		return false, s
	}
	if n := strings.Count(line, blockMark); n > 0 {
		after = s
		if n%2 == 1 {
			if s == stateLive {
				after = stateComment
			} else {
				after = stateLive
			}
		}
		return false, after
	}
	return s == stateLive, s
}
