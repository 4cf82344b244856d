package graph

import (
	"regexp"
	"strings"
)

var (
	typeRe      = regexp.MustCompile(`^type\s+([A-Za-z_][A-Za-z0-9_]*)(\s+@table)?[^{]*\{`)
	typeFieldRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*:\s*([A-Za-z0-9_\[\]]+!?)`)
)

// ParseSchema scans a document for `type Name { ... }` blocks and
// returns one TypeDefinition per balanced block. A `type` header seen
// while a block is still open flushes the open block first; a block left
// unterminated at the end of the document is dropped. Field
// declarations may sit on the header line after the opening brace.
func (p *Parser) ParseSchema(doc string) []TypeDefinition {
	var defs []TypeDefinition
	var cur *TypeDefinition
	var seen map[string]struct{}

	addFields := func(ln string) {
		for _, m := range typeFieldRe.FindAllStringSubmatch(ln, -1) {
			if _, dup := seen[m[1]]; dup {
				continue
			}
			seen[m[1]] = struct{}{}
			cur.Fields = append(cur.Fields, Field{Name: m[1], Type: m[2]})
		}
	}

	st := stateLive
	for _, ln := range splitLines(doc) {
		var live bool
		if live, st = st.next(ln); !live {
			continue
		}

		if m := typeRe.FindStringSubmatch(ln); m != nil {
			if cur != nil {
				defs = append(defs, *cur)
			}
			cur = &TypeDefinition{Name: m[1], IsTable: m[2] != ""}
			seen = make(map[string]struct{})
			if i := strings.Index(ln, "{"); i >= 0 {
				addFields(ln[i+1:])
			}
			continue
		}
		if cur == nil {
			continue
		}
		if ln == "}" {
			defs = append(defs, *cur)
			cur = nil
			continue
		}
		addFields(ln)
	}
	return defs
}
