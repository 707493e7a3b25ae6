package gtkcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRule builds a detached rule holding the given declarations.
func newRule(decls ...*Declaration) *Rule {
	rule := &Rule{Selector: ".test"}
	for _, d := range decls {
		rule.Append(d)
	}
	return rule
}

func props(c Container) []string {
	var out []string
	for _, d := range c.Declarations() {
		out = append(out, d.Prop)
	}
	return out
}

func TestSubstituteVar(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		prop        string
		replacement string
		expected    string
	}{
		{
			name:        "value wins over default",
			value:       "var(--x, red)",
			prop:        "--x",
			replacement: "blue",
			expected:    "blue",
		},
		{
			name:        "empty value falls back to default",
			value:       "var(--x, red)",
			prop:        "--x",
			replacement: "",
			expected:    "red",
		},
		{
			name:        "every occurrence is replaced",
			value:       "var(--x, 0) var(--x, 0) 4px var(--x,1px)",
			prop:        "--x",
			replacement: "2px",
			expected:    "2px 2px 4px 2px",
		},
		{
			name:        "reference without default",
			value:       "var(--x)",
			prop:        "--x",
			replacement: "1",
			expected:    "1",
		},
		{
			name:        "reference without default and empty value",
			value:       "a var(--x) b",
			prop:        "--x",
			replacement: "",
			expected:    "a  b",
		},
		{
			name:        "longer property name is untouched",
			value:       "var(--x-y, 1) var(--x, 2)",
			prop:        "--x",
			replacement: "9",
			expected:    "var(--x-y, 1) 9",
		},
		{
			name:        "other properties are untouched",
			value:       "rgb(1 2 3 / var(--tw-bg-opacity))",
			prop:        "--tw-ring",
			replacement: "1",
			expected:    "rgb(1 2 3 / var(--tw-bg-opacity))",
		},
		{
			name:        "default with nested parentheses",
			value:       "var(--c, rgb(0 0 0 / 0.5)) solid",
			prop:        "--c",
			replacement: "",
			expected:    "rgb(0 0 0 / 0.5) solid",
		},
		{
			name:        "reference nested in another function",
			value:       "calc(var(--gap, 1rem) * 2)",
			prop:        "--gap",
			replacement: "4px",
			expected:    "calc(4px * 2)",
		},
		{
			name:        "unbalanced reference is left alone",
			value:       "var(--x, red",
			prop:        "--x",
			replacement: "blue",
			expected:    "var(--x, red",
		},
		{
			name:        "no reference",
			value:       "10px",
			prop:        "--x",
			replacement: "blue",
			expected:    "10px",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstituteVar(tt.value, tt.prop, tt.replacement)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestRewriteValue_Colors(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "alpha",
			value:    "rgb(1 2 3 / 4)",
			expected: "rgba(1, 2, 3, 4)",
		},
		{
			name:     "fractional alpha",
			value:    "rgb(59 130 246 / 0.5)",
			expected: "rgba(59, 130, 246, 0.5)",
		},
		{
			name:     "alpha variable",
			value:    "rgb(1 2 3 / var(--a))",
			expected: "rgba(1, 2, 3, var(--a))",
		},
		{
			name:     "no alpha",
			value:    "rgb(10 20 30)",
			expected: "rgb(10, 20, 30)",
		},
		{
			name:     "only the first plain color is rewritten",
			value:    "rgb(1 2 3) rgb(1 2 3)",
			expected: "rgb(1, 2, 3) rgb(1 2 3)",
		},
		{
			name:     "only the first alpha color is rewritten",
			value:    "rgb(1 2 3 / 4), rgb(5 6 7 / 8)",
			expected: "rgba(1, 2, 3, 4), rgb(5 6 7 / 8)",
		},
		{
			name:     "each form is rewritten once",
			value:    "0 0 0 1px rgb(1 2 3 / 4), 0 0 0 2px rgb(5 6 7)",
			expected: "0 0 0 1px rgba(1, 2, 3, 4), 0 0 0 2px rgb(5, 6, 7)",
		},
		{
			name:     "comma notation is unchanged",
			value:    "rgba(1, 2, 3, 0.5)",
			expected: "rgba(1, 2, 3, 0.5)",
		},
		{
			name:     "malformed color is unchanged",
			value:    "rgb(1 2)",
			expected: "rgb(1 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteValue(tt.value, "--unused", "")
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestRewriteValue_SubstitutesBeforeColors(t *testing.T) {
	got := RewriteValue("rgb(59 130 246 / var(--tw-bg-opacity, 1))", "--tw-bg-opacity", "0.5")
	assert.Equal(t, "rgba(59, 130, 246, 0.5)", got)
}

func TestInliner_VisitDeclaration(t *testing.T) {
	custom := &Declaration{Prop: "--tw-text-opacity", Value: "1"}
	color := &Declaration{Prop: "color", Value: "rgb(239 68 68 / var(--tw-text-opacity, 1))"}
	margin := &Declaration{Prop: "margin", Value: "0"}
	rule := newRule(color, custom, margin)

	Inliner{}.VisitDeclaration(custom, rule.Declarations())

	assert.Equal(t, []string{"color", "margin"}, props(rule))
	assert.Equal(t, "rgba(239, 68, 68, 1)", color.Value)
	assert.Equal(t, "0", margin.Value)
	assert.Nil(t, custom.Parent())
}

func TestInliner_IgnoresRegularDeclarations(t *testing.T) {
	color := &Declaration{Prop: "color", Value: "rgb(1 2 3)"}
	other := &Declaration{Prop: "background", Value: "var(--x, red)"}
	rule := newRule(color, other)

	Inliner{}.VisitDeclaration(color, rule.Declarations())

	assert.Equal(t, []string{"color", "background"}, props(rule))
	assert.Equal(t, "rgb(1 2 3)", color.Value)
	assert.Equal(t, "var(--x, red)", other.Value)
}

func TestInliner_Walk(t *testing.T) {
	sheet, err := NewParser(nil).ParseString(`
.ring {
  --tw-ring-offset-width: 0px;
  --tw-ring-color: rgb(59 130 246 / 0.5);
  box-shadow: 0 0 0 var(--tw-ring-offset-width, 2px) var(--tw-ring-color, black);
  border-color: var(--tw-ring-color);
  width: 10px;
}
.empty {
  --tw-shadow: ;
  box-shadow: var(--tw-shadow, 0 0 #0000);
}
`, "test.css")
	require.NoError(t, err)

	before := Count(sheet)
	Walk(sheet, Inliner{})
	after := Count(sheet)

	assert.Equal(t, 0, after.CustomProperties)
	assert.Equal(t, before.Declarations-before.CustomProperties, after.Declarations)

	rules := sheet.Children()
	require.Len(t, rules, 2)

	ring := rules[0].(*Rule)
	assert.Equal(t, []string{"box-shadow", "border-color", "width"}, props(ring))
	decls := ring.Declarations()
	assert.Equal(t, "0 0 0 0px rgba(59, 130, 246, 0.5)", decls[0].Value)
	assert.Equal(t, "rgba(59, 130, 246, 0.5)", decls[1].Value)
	assert.Equal(t, "10px", decls[2].Value)

	empty := rules[1].(*Rule)
	require.Len(t, empty.Declarations(), 1)
	assert.Equal(t, "0 0 #0000", empty.Declarations()[0].Value)
}

func TestInliner_ChainedProperties(t *testing.T) {
	a := &Declaration{Prop: "--a", Value: "4px"}
	b := &Declaration{Prop: "--b", Value: "var(--a) solid"}
	border := &Declaration{Prop: "border", Value: "var(--b)"}
	sheet := &Stylesheet{}
	sheet.Append(newRule(a, b, border))

	Walk(sheet, Inliner{})

	assert.Equal(t, "4px solid", border.Value)
	assert.Equal(t, 0, Count(sheet).CustomProperties)
}

func TestInliner_ParsedColors(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected string
	}{
		{
			name:     "alpha on regular declaration",
			css:      `.x { --y: 0; color: rgb(1 2 3 / 4); }`,
			expected: "rgba(1, 2, 3, 4)",
		},
		{
			name:     "alpha from custom property",
			css:      `.bg-blue-500 { --tw-bg-opacity: 1; background-color: rgb(59 130 246 / var(--tw-bg-opacity)); }`,
			expected: "rgba(59, 130, 246, 1)",
		},
		{
			name:     "unresolved alpha var",
			css:      `.x { --y: 0; color: rgb(1 2 3 / var(--z)); }`,
			expected: "rgba(1, 2, 3, var(--z))",
		},
		{
			name:     "only first plain color",
			css:      `.x { --y: 0; border-color: rgb(1 2 3) rgb(4 5 6); }`,
			expected: "rgb(1, 2, 3) rgb(4 5 6)",
		},
		{
			name:     "minified source",
			css:      `.x{--tw-text-opacity:1;color:rgb(239 68 68 / var(--tw-text-opacity))}`,
			expected: "rgba(239, 68, 68, 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := NewParser(nil).ParseString(tt.css, "test.css")
			require.NoError(t, err)

			Walk(sheet, Inliner{})

			require.Len(t, sheet.Children(), 1)
			decls := sheet.Children()[0].(*Rule).Declarations()
			require.Len(t, decls, 1)
			assert.Equal(t, tt.expected, decls[0].Value)
		})
	}
}
