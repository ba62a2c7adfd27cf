package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccomment/internal/domain"
)

func TestCompressor_SingleModuleNoMembers(t *testing.T) {
	c := NewCompressor(nil)

	node := c.Compress([]domain.DocRecord{{Module: "X"}})

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"module":"X"}`, string(data))
}

func TestCompressor_EmptyInput(t *testing.T) {
	c := NewCompressor(nil)

	data, err := json.Marshal(c.Compress(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestCompressor_MethodsKeepSourceOrder(t *testing.T) {
	c := NewCompressor(nil)

	node := c.Compress([]domain.DocRecord{
		{Function: "zeta"},
		{Module: "M"},
		{Function: "alpha", Module: "M"},
		{Function: "mid", Async: true},
	})

	require.Len(t, node.Methods, 3)
	assert.Equal(t, "zeta", node.Methods[0].Name)
	assert.Equal(t, "alpha", node.Methods[1].Name)
	assert.Equal(t, "mid", node.Methods[2].Name)
	assert.True(t, node.Methods[2].Async)
	assert.Equal(t, "M", node.Module)
}

func TestCompressor_MethodDropsModule(t *testing.T) {
	c := NewCompressor(nil)

	node := c.Compress([]domain.DocRecord{{Module: "Owner", Function: "run", Description: "Runs."}})

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"methods":[{"name":"run","description":"Runs."}]}`, string(data))
}

func TestCompressor_UntaggedRecordsSkipped(t *testing.T) {
	c := NewCompressor(nil)

	node := c.Compress([]domain.DocRecord{
		{Description: "floating prose"},
		{Returns: []domain.TypedEntry{{Type: "Number", Description: "orphan"}}},
	})

	assert.Equal(t, domain.ModuleNode{}, node)
}

func TestCompressor_ModuleLastWriteWins(t *testing.T) {
	c := NewCompressor(nil)

	first := domain.DocRecord{
		Module:      "Foo",
		Description: "first",
		Properties:  []domain.TypedEntry{{Type: "A", Name: "a", Description: "alpha"}},
	}
	second := domain.DocRecord{
		Module:      "Foo",
		Description: "second",
	}
	third := domain.DocRecord{
		Module:     "Foo",
		Properties: []domain.TypedEntry{{Type: "B", Name: "b", Description: "beta"}},
	}

	node := c.Compress([]domain.DocRecord{first, second})
	assert.Equal(t, "Foo", node.Module)
	assert.Equal(t, "second", node.Description)
	assert.Equal(t, first.Properties, node.Properties, "fields absent from the later record survive")

	node = c.Compress([]domain.DocRecord{first, second, third})
	assert.Equal(t, "second", node.Description)
	assert.Equal(t, third.Properties, node.Properties, "collections are replaced, not appended")
}
