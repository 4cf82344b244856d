package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaTable(t *testing.T) {
	defs := NewParser().ParseSchema(`
	type Movie @table {
		id: String
		title: String
	}`)

	require.Len(t, defs, 1)
	assert.Equal(t, TypeDefinition{
		Name:    "Movie",
		IsTable: true,
		Fields: []Field{
			{Name: "id", Type: "String"},
			{Name: "title", Type: "String"},
		},
	}, defs[0])
}

func TestParseSchemaMultipleTypes(t *testing.T) {
	defs := NewParser().ParseSchema(`
	type Movie @table {
		id: String
	}

	type Review {
		stars: Int
		movie: Movie
	}`)

	require.Len(t, defs, 2)
	assert.Equal(t, "Movie", defs[0].Name)
	assert.True(t, defs[0].IsTable)
	assert.Equal(t, "Review", defs[1].Name)
	assert.False(t, defs[1].IsTable)
	assert.Equal(t, []Field{
		{Name: "stars", Type: "Int"},
		{Name: "movie", Type: "Movie"},
	}, defs[1].Fields)
}

func TestParseSchemaMissingClose(t *testing.T) {
	// a new type header while a block is open flushes the open block
	defs := NewParser().ParseSchema(`
	type Movie @table {
		id: String
	type Review {
		stars: Int
	}`)

	require.Len(t, defs, 2)
	assert.Equal(t, "Movie", defs[0].Name)
	assert.Equal(t, []Field{{Name: "id", Type: "String"}}, defs[0].Fields)
	assert.Equal(t, "Review", defs[1].Name)
}

func TestParseSchemaUnterminated(t *testing.T) {
	// a block still open at the end of the document is dropped
	defs := NewParser().ParseSchema(`
	type Movie @table {
		id: String`)

	assert.Empty(t, defs)
}

func TestParseSchemaComments(t *testing.T) {
	defs := NewParser().ParseSchema(`
	# type Hidden {
	type Movie {
		id: String
		# rating: Int
		"""
		internal: String
		"""
		title: String
		title: String
	}`)

	require.Len(t, defs, 1)
	assert.Equal(t, []Field{
		{Name: "id", Type: "String"},
		{Name: "title", Type: "String"},
	}, defs[0].Fields)
}

func TestParseSchemaHeaderLineFields(t *testing.T) {
	// declarations after the opening brace are collected too
	defs := NewParser().ParseSchema("type Movie @table { id: String title: String }\n}")

	require.Len(t, defs, 1)
	assert.Equal(t, TypeDefinition{
		Name:    "Movie",
		IsTable: true,
		Fields: []Field{
			{Name: "id", Type: "String"},
			{Name: "title", Type: "String"},
		},
	}, defs[0])
}

func TestParseSchemaNoTypes(t *testing.T) {
	defs := NewParser().ParseSchema(`
	query GetUser {
		user
	}`)
	assert.Empty(t, defs)
}
