// Package gen renders Go source from scanned GraphQL shapes. One
// generated file holds a struct per schema type block plus the variable
// and selection structs of a scanned operation.
package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/gobuffalo/flect"

	"github.com/gqlscan/gqlscan/graph"
)

type Generator struct {
	pkg string
}

func New(pkg string) *Generator {
	return &Generator{pkg: pkg}
}

// Document renders one Go file for a scanned document. op may be nil
// when the document held no operation; defs may be empty when it held
// no schema type blocks. At least one of the two must carry data.
func (g *Generator) Document(op *graph.Operation, defs []graph.TypeDefinition) ([]byte, error) {
	if op == nil && len(defs) == 0 {
		return nil, fmt.Errorf("nothing to generate")
	}

	f := jen.NewFile(g.pkg)
	f.HeaderComment("Code generated by gqlscan. DO NOT EDIT.")

	for _, d := range defs {
		renderSchemaType(f, d)
	}
	if op != nil {
		renderOperation(f, *op)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderSchemaType(f *jen.File, d graph.TypeDefinition) {
	name := flect.Pascalize(d.Name)
	f.Type().Id(name).Struct(structFields(d.Fields)...)

	if d.IsTable {
		table := flect.Pluralize(flect.Underscore(d.Name))
		f.Func().Params(jen.Id(name)).Id("TableName").Params().String().Block(
			jen.Return(jen.Lit(table)),
		)
	}
}

// renderOperation emits the variables struct of the operation followed
// by one struct per selection scope, outermost first.
func renderOperation(f *jen.File, op graph.Operation) {
	if len(op.Variables) > 0 {
		var fields []jen.Code
		for _, v := range op.Variables {
			fields = append(fields, jen.Id(flect.Pascalize(v.Name)).
				Add(goType(v.Type)).
				Tag(map[string]string{"json": v.Name}))
		}
		f.Type().Id(flect.Pascalize(op.Name) + "Variables").Struct(fields...)
	}

	renderSelection(f, flect.Pascalize(op.Name), op.Fields)
}

func renderSelection(f *jen.File, name string, fields []graph.Field) {
	f.Type().Id(name).Struct(structFields(fields)...)

	for _, fl := range fields {
		if len(fl.Fields) != 0 {
			renderSelection(f, fl.Type, fl.Fields)
		}
	}
}

func structFields(fields []graph.Field) []jen.Code {
	var out []jen.Code
	for _, fl := range fields {
		out = append(out, jen.Id(flect.Pascalize(fl.Name)).
			Add(goType(fl.Type)).
			Tag(map[string]string{"json": fl.Name}))
	}
	return out
}

// goType maps a GraphQL type expression to its Go equivalent. Bracketed
// forms become slices, a trailing `!` is dropped and unknown names are
// assumed to be generated struct types.
func goType(t string) *jen.Statement {
	t = strings.TrimSuffix(strings.TrimSpace(t), "!")
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		return jen.Index().Add(goType(t[1 : len(t)-1]))
	}

	switch t {
	case "String", "ID":
		return jen.String()
	case "Int":
		return jen.Int()
	case "Float":
		return jen.Float64()
	case "Boolean":
		return jen.Bool()
	case "Object":
		return jen.Map(jen.String()).Interface()
	}
	return jen.Id(flect.Pascalize(t))
}
