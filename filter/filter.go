// Package filter selects elements of JSON arrays returned by the Uber API
// using expr-lang expressions.
//
// Each element's top-level fields are exposed as variables, so for the
// products list `capacity >= 6 && display_name != "uberTAXI"` keeps the
// larger vehicles. Fields absent from an element evaluate to nil.
package filter

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Option configures a Compiler
type Option func(*Compiler)

// WithCache enables caching of compiled filters, keeping at most size of them
func WithCache(size int) Option {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// WithFunctions adds helper functions available to every expression
func WithFunctions(funcs map[string]any) Option {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler turns expressions into Filters
type Compiler struct {
	helpers map[string]any
	cache   *programCache
}

// NewCompiler creates a compiler with the default helper functions
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{helpers: helperFunctions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression that must evaluate to a bool
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if f, ok := c.cache.get(expression); ok {
			return f, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{expression: expression, program: program}
	if c.cache != nil {
		c.cache.put(expression, f)
	}
	return f, nil
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.len()
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one decoded JSON object
func (f *Filter) Match(item map[string]any) (bool, error) {
	env := helperFunctions()
	maps.Copy(env, item)
	env["has"] = func(field string) bool {
		_, ok := item[field]
		return ok
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}
	// AsBool is only checked at compile time; undefined or non-bool fields
	// can still produce other values.
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Err:        fmt.Errorf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// Apply keeps the elements of the array stored under key in the JSON object
// body that match f. Matching elements are copied byte for byte; elements
// the filter cannot evaluate are dropped. The number of kept elements is
// returned alongside the rewritten document.
func Apply(body json.RawMessage, key string, f *Filter) (json.RawMessage, int, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("failed to parse response: %w", err)
	}

	raw, ok := doc[key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: missing %q", ErrNoArray, key)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, 0, fmt.Errorf("%w: %q is not an array", ErrNoArray, key)
	}

	kept := make([]json.RawMessage, 0, len(elems))
	for _, elem := range elems {
		var item map[string]any
		if err := json.Unmarshal(elem, &item); err != nil {
			continue
		}
		if ok, err := f.Match(item); err == nil && ok {
			kept = append(kept, elem)
		}
	}

	filtered, err := json.Marshal(kept)
	if err != nil {
		return nil, 0, err
	}
	doc[key] = filtered

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, 0, err
	}
	return out, len(kept), nil
}

// helperFunctions returns the functions every expression can call
func helperFunctions() map[string]any {
	return map[string]any{
		// Time estimates are in seconds
		"minutes": func(seconds float64) float64 {
			return seconds / 60
		},
		"like": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		// Placeholder so compilation knows the signature; replaced per item
		"has": func(field string) bool {
			return false
		},
	}
}
