package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlscan/gqlscan/graph"
)

func TestDocumentSchema(t *testing.T) {
	src, err := New("model").Document(nil, []graph.TypeDefinition{
		{
			Name:    "Movie",
			IsTable: true,
			Fields: []graph.Field{
				{Name: "title", Type: "String"},
				{Name: "release_year", Type: "Int"},
				{Name: "rating", Type: "Float"},
				{Name: "archived", Type: "Boolean"},
				{Name: "tags", Type: "[String]"},
			},
		},
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by gqlscan. DO NOT EDIT.")
	assert.Contains(t, out, "package model")
	assert.Contains(t, out, "type Movie struct {")
	assert.Contains(t, out, "Title string `json:\"title\"`")
	assert.Contains(t, out, "ReleaseYear int `json:\"release_year\"`")
	assert.Contains(t, out, "Rating float64 `json:\"rating\"`")
	assert.Contains(t, out, "Archived bool `json:\"archived\"`")
	assert.Contains(t, out, "Tags []string `json:\"tags\"`")
	assert.Contains(t, out, "func (Movie) TableName() string")
	assert.Contains(t, out, `return "movies"`)
}

func TestDocumentOperation(t *testing.T) {
	op := graph.Operation{
		Type: graph.OpQuery,
		Name: "GetUser",
		Variables: []graph.Variable{
			{Name: "name", Type: "String!"},
			{Name: "limit", Type: "Int"},
		},
		Fields: []graph.Field{
			{Name: "user", Type: "GetUserUser", Fields: []graph.Field{
				{Name: "email", Type: "String"},
			}},
			{Name: "total", Type: "Int"},
			{Name: "meta", Type: "Object"},
		},
	}

	src, err := New("model").Document(&op, nil)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "type GetUserVariables struct {")
	assert.Contains(t, out, "Name string `json:\"name\"`")
	assert.Contains(t, out, "Limit int `json:\"limit\"`")
	assert.Contains(t, out, "type GetUser struct {")
	assert.Contains(t, out, "User GetUserUser `json:\"user\"`")
	assert.Contains(t, out, "Total int `json:\"total\"`")
	assert.Contains(t, out, "Meta map[string]interface{} `json:\"meta\"`")
	assert.Contains(t, out, "type GetUserUser struct {")
	assert.Contains(t, out, "Email string `json:\"email\"`")

	// no table methods for operation structs
	assert.False(t, strings.Contains(out, "TableName"))
}

func TestDocumentEmpty(t *testing.T) {
	_, err := New("model").Document(nil, nil)
	assert.Error(t, err)
}
