package graph

import (
	"regexp"
	"strings"

	"github.com/gobuffalo/flect"
)

var (
	opRe  = regexp.MustCompile(`\b(query|mutation|subscription)\s+([A-Za-z_][A-Za-z0-9_]*)`)
	varRe = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)\s*:\s*([A-Za-z0-9_\[\]]+!?)`)

	fieldArgsRe  = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\(.*\)\s*\{`)
	fieldObjRe   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\{`)
	fieldTypedRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*:\s*([A-Za-z0-9_\[\]]+!?),?$`)
	fieldBareRe  = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*),?$`)
)

// Parse scans one document for its first operation header and extracts
// the variables and field selections scoped to that operation. The
// second return is false when no header was matched; there are no other
// failure modes, malformed lines are skipped.
func (p *Parser) Parse(doc string) (op Operation, ok bool) {
	lines := splitLines(doc)

	st := stateLive
	for _, ln := range lines {
		var live bool
		if live, st = st.next(ln); !live {
			continue
		}
		if m := opRe.FindStringSubmatch(ln); m != nil {
			op.Type = opTypeOf(m[1])
			op.Name = m[2]
			break
		}
	}
	if op.Type == opNone || op.Name == "" {
		return Operation{}, false
	}

	op.Variables = scanVariables(lines, op.Name)
	op.Fields = p.parseFieldLines(selectionBody(lines, op.Name), op.Name)
	return op, true
}

func opTypeOf(kind string) OpType {
	switch kind {
	case "query":
		return OpQuery
	case "mutation":
		return OpMutate
	case "subscription":
		return OpSub
	}
	return opNone
}

func splitLines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// scanVariables collects `$name: Type` declarations from lines scoped to
// the named operation. Headers for other operations switch extraction
// off until the target is seen again. Duplicate declarations with the
// same name and type collapse to one.
func scanVariables(lines []string, name string) []Variable {
	var vars []Variable
	seen := make(map[Variable]struct{})

	st := stateLive
	inTarget := false

	for _, ln := range lines {
		var live bool
		if live, st = st.next(ln); !live {
			continue
		}
		if m := opRe.FindStringSubmatch(ln); m != nil {
			inTarget = (m[2] == name)
		}
		if !inTarget {
			continue
		}
		for _, m := range varRe.FindAllStringSubmatch(ln, -1) {
			v := Variable{Name: m[1], Type: m[2]}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			vars = append(vars, v)
		}
	}
	return vars
}

// selectionBody returns the lines inside the brace-delimited selection
// set of the named operation. Scanning toggles off at a header for a
// different operation and field lines are only taken while the brace
// depth opened by the target's own `{` is unbalanced.
func selectionBody(lines []string, name string) []string {
	var body []string

	st := stateLive
	inTarget := false
	depth := 0

	for _, ln := range lines {
		var live bool
		if live, st = st.next(ln); !live {
			continue
		}

		if m := opRe.FindStringSubmatch(ln); m != nil {
			inTarget = (m[2] == name)
			depth = 0
			if !inTarget {
				continue
			}
			if i := strings.Index(ln, "{"); i >= 0 {
				depth = strings.Count(ln, "{") - strings.Count(ln, "}")
				if rest := trimClosed(ln[i+1:]); rest != "" {
					body = append(body, rest)
				}
			}
			continue
		}

		if !inTarget {
			continue
		}

		if depth == 0 {
			if i := strings.Index(ln, "{"); i >= 0 {
				depth = strings.Count(ln, "{") - strings.Count(ln, "}")
				if rest := trimClosed(ln[i+1:]); rest != "" {
					body = append(body, rest)
				}
			}
			continue
		}

		depth += strings.Count(ln, "{") - strings.Count(ln, "}")
		if depth <= 0 {
			depth = 0
			if rest := trimClosed(ln); rest != "" {
				body = append(body, rest)
			}
			continue
		}
		if ln != "" {
			body = append(body, ln)
		}
	}
	return body
}

// trimClosed strips the trailing close braces off the last line of a
// balanced block so only selectable content remains.
func trimClosed(ln string) string {
	return strings.TrimSpace(strings.TrimRight(ln, "} \t"))
}

// parseFieldLines extracts one field per matching line, handling three
// shapes: `name(args) { ... }`, `name { ... }` and `name[: Type]`. A
// field opening a selection set consumes the following lines until its
// braces balance and the inner lines are parsed recursively with the
// same algorithm. Nested results are stored in the registry under the
// synthesized `<OperationName><CapitalizedFieldName>` type name, which
// also becomes the outer field's type. Duplicate names in one scope are
// dropped, first occurrence wins.
func (p *Parser) parseFieldLines(lines []string, opName string) []Field {
	var fields []Field
	seen := make(map[string]struct{})

	add := func(f Field) {
		if _, dup := seen[f.Name]; dup {
			return
		}
		seen[f.Name] = struct{}{}
		fields = append(fields, f)
	}

	for i := 0; i < len(lines); i++ {
		ln := lines[i]

		var name string
		if m := fieldArgsRe.FindStringSubmatch(ln); m != nil {
			name = m[1]
		} else if m := fieldObjRe.FindStringSubmatch(ln); m != nil {
			name = m[1]
		}

		if name != "" {
			var inner []string
			depth := strings.Count(ln, "{") - strings.Count(ln, "}")

			if j := strings.Index(ln, "{"); j >= 0 {
				rest := ln[j+1:]
				if depth <= 0 {
					rest = trimClosed(rest)
				}
				if rest = strings.TrimSpace(rest); rest != "" {
					inner = append(inner, rest)
				}
			}
			for depth > 0 && i+1 < len(lines) {
				i++
				nl := lines[i]
				depth += strings.Count(nl, "{") - strings.Count(nl, "}")
				if depth <= 0 {
					nl = trimClosed(nl)
				}
				if nl != "" {
					inner = append(inner, nl)
				}
			}

			f := Field{Name: name, Type: typeObject}
			if nested := p.parseFieldLines(inner, opName); len(nested) > 0 {
				f.Type = opName + flect.Capitalize(name)
				f.Fields = nested
				p.nested[f.Type] = nested
			}
			add(f)
			continue
		}

		if m := fieldTypedRe.FindStringSubmatch(ln); m != nil {
			add(Field{Name: m[1], Type: m[2]})
			continue
		}
		if m := fieldBareRe.FindStringSubmatch(ln); m != nil {
			add(Field{Name: m[1], Type: typeString})
		}
		// anything else is noise to this scanner
	}
	return fields
}
