// Package graph implements a line-oriented scanner for GraphQL documents.
// It extracts the shape of a single operation (kind, name, variables and
// field selections) or the `type` blocks of a schema document using
// per-line pattern matching. It is a best-effort heuristic scanner, not a
// validating parser: lines that match nothing are skipped.
package graph

// OpType identifies the kind of a GraphQL operation.
type OpType int8

const (
	opNone OpType = iota
	OpQuery
	OpMutate
	OpSub
)

func (t OpType) String() string {
	switch t {
	case OpQuery:
		return "query"
	case OpMutate:
		return "mutation"
	case OpSub:
		return "subscription"
	}
	return ""
}

// Field is one selected field in an operation or one member of a schema
// type. Type falls back to "String" for plain fields and "Object" for
// selections whose body yielded nothing. A field that owns a nested
// selection carries its child fields in Fields and a synthesized type
// name (operation name + capitalized field name) in Type.
type Field struct {
	Name   string
	Type   string
	Fields []Field
}

// Variable is a `$name: Type` declaration inside an operation.
type Variable struct {
	Name string
	Type string
}

// Operation is the shape of a single query, mutation or subscription.
type Operation struct {
	Type      OpType
	Name      string
	Variables []Variable
	Fields    []Field
}

// TypeDefinition is one schema `type Name { ... }` block. IsTable is set
// when the header carries a @table directive.
type TypeDefinition struct {
	Name    string
	Fields  []Field
	IsTable bool
}

// Parser scans one document at a time. The nested-selection registry it
// owns grows across Parse calls and is never cleared, so use a fresh
// Parser per document and do not share one across goroutines.
type Parser struct {
	nested map[string][]Field
}

func NewParser() *Parser {
	return &Parser{nested: make(map[string][]Field)}
}

// NestedFields returns the field list discovered under the synthesized
// nested-type name, valid after a Parse call that produced it.
func (p *Parser) NestedFields(name string) ([]Field, bool) {
	fl, ok := p.nested[name]
	return fl, ok
}

const (
	typeObject = "Object"
	typeString = "String"
)
