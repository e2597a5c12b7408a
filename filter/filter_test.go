package filter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsBody = `{
  "products": [
    {"product_id": "a", "display_name": "UberBLACK", "capacity": 4},
    {"product_id": "b", "display_name": "UberSUV", "capacity": 6},
    {"product_id": "c", "display_name": "uberTAXI", "capacity": 4, "shared": true}
  ],
  "region": "sf"
}`

func TestCompile(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"comparison", "capacity >= 6", false},
		{"helper", `like(display_name, "suv")`, false},
		{"has", `has("shared")`, false},
		{"empty", "   ", true},
		{"syntax", "capacity >=", true},
		{"not bool", `"text"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := c.Compile(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMatch(t *testing.T) {
	c := NewCompiler()
	item := map[string]any{"display_name": "UberSUV", "capacity": 6.0, "estimate": 420.0}

	tests := []struct {
		expr string
		want bool
	}{
		{"capacity >= 6", true},
		{"capacity < 6", false},
		{`like(display_name, "suv")`, true},
		{`display_name == "UberBLACK"`, false},
		{"minutes(estimate) == 7", true},
		{`has("capacity")`, true},
		{`has("surge_multiplier")`, false},
		{"missing == nil", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := c.Compile(tt.expr)
			require.NoError(t, err)

			got, err := f.Match(item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchEvaluationError(t *testing.T) {
	f, err := NewCompiler().Compile("capacity > 2")
	require.NoError(t, err)

	_, err = f.Match(map[string]any{"capacity": "four"})
	require.Error(t, err)
	var evalErr *EvaluationError
	assert.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "capacity > 2", evalErr.Expression)
}

func TestApply(t *testing.T) {
	f, err := NewCompiler().Compile("capacity == 4")
	require.NoError(t, err)

	out, kept, err := Apply(json.RawMessage(productsBody), "products", f)
	require.NoError(t, err)
	assert.Equal(t, 2, kept)

	var doc struct {
		Products []struct {
			ProductID string `json:"product_id"`
		} `json:"products"`
		Region string `json:"region"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Products, 2)
	assert.Equal(t, "a", doc.Products[0].ProductID)
	assert.Equal(t, "c", doc.Products[1].ProductID)
	assert.Equal(t, "sf", doc.Region)
}

func TestApplyMissingField(t *testing.T) {
	f, err := NewCompiler().Compile("shared == true")
	require.NoError(t, err)

	_, kept, err := Apply(json.RawMessage(productsBody), "products", f)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
}

func TestApplyErrors(t *testing.T) {
	f, err := NewCompiler().Compile("true")
	require.NoError(t, err)

	_, _, err = Apply(json.RawMessage(productsBody), "prices", f)
	assert.ErrorIs(t, err, ErrNoArray)

	_, _, err = Apply(json.RawMessage(productsBody), "region", f)
	assert.ErrorIs(t, err, ErrNoArray)

	_, _, err = Apply(json.RawMessage(`[1,2]`), "products", f)
	require.Error(t, err)
}

func TestCache(t *testing.T) {
	c := NewCompiler(WithCache(2))

	a, err := c.Compile("capacity > 1")
	require.NoError(t, err)
	again, err := c.Compile("  capacity > 1 ")
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.Equal(t, 1, c.Size())

	_, err = c.Compile("capacity > 2")
	require.NoError(t, err)
	_, err = c.Compile("capacity > 3")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	// Oldest entry was evicted.
	evicted, err := c.Compile("capacity > 1")
	require.NoError(t, err)
	assert.NotSame(t, a, evicted)

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestWithFunctions(t *testing.T) {
	c := NewCompiler(WithFunctions(map[string]any{
		"surging": func(multiplier float64) bool { return multiplier > 1 },
	}))

	f, err := c.Compile("surging(surge_multiplier)")
	require.NoError(t, err)

	got, err := f.Match(map[string]any{"surge_multiplier": 1.5})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMatchNonBoolResult(t *testing.T) {
	c := NewCompiler()

	tests := []struct {
		name string
		expr string
		item map[string]any
	}{
		{"missing field", "shared", map[string]any{"capacity": 4.0}},
		{"string field", "display_name", map[string]any{"display_name": "UberX"}},
		{"number field", "capacity", map[string]any{"capacity": 4.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := c.Compile(tt.expr)
			require.NoError(t, err)

			got, err := f.Match(tt.item)
			require.Error(t, err)
			assert.False(t, got)

			var evalErr *EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tt.expr, evalErr.Expression)
		})
	}

	t.Run("bool field still matches", func(t *testing.T) {
		f, err := c.Compile("shared")
		require.NoError(t, err)

		got, err := f.Match(map[string]any{"shared": true})
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestApplyBareField(t *testing.T) {
	f, err := NewCompiler().Compile("shared")
	require.NoError(t, err)

	out, kept, err := Apply(json.RawMessage(`{"products":[{"product_id":"a","shared":true},{"product_id":"b","capacity":4}]}`), "products", f)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
	assert.JSONEq(t, `{"products":[{"product_id":"a","shared":true}]}`, string(out))
}
