package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "  ", want: ""},
		{name: "plain markdown untouched", in: "**bold** and `code`", want: "**bold** and `code`"},
		{name: "script dropped", in: "hi<script>alert('x')</script> there", want: "hi there"},
		{name: "tags stripped", in: `<b onclick="x()">bold</b>`, want: "bold"},
		{name: "comparison kept", in: "a < b && c > d", want: "a < b && c > d"},
		{name: "unspaced comparison kept", in: "if a<b && c>d then", want: "if a<b && c>d then"},
		{name: "code span kept", in: "Use `<br>` for breaks.", want: "Use `<br>` for breaks."},
		{
			name: "fenced code kept",
			in:   "```go\nvar m map[string]Vec<String>\nif a<b && c>d {}\n```",
			want: "```go\nvar m map[string]Vec<String>\nif a<b && c>d {}\n```",
		},
		{
			name: "indented code kept",
			in:   "Example:\n\n    <div class=\"x\">hi</div>\n",
			want: "Example:\n\n    <div class=\"x\">hi</div>\n",
		},
		{name: "tag next to code span stripped", in: "<i>note</i> `<i>`", want: "note `<i>`"},
		{name: "quotes kept", in: `it's "fine"`, want: `it's "fine"`},
		{name: "escape sequences removed", in: "red\x1b[31m text\x07", want: "red[31m text"},
		{name: "newlines and tabs kept", in: "a\n\tb", want: "a\n\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestPlainRenderer(t *testing.T) {
	r := NewPlainRenderer()

	out, err := r.Render("# Title\n<img src=x onerror=alert(1)>text")
	require.NoError(t, err)
	assert.Equal(t, "# Title\ntext", out)
	assert.NoError(t, r.SetWidth(10))
}

func TestPlainRenderer_KeepsCode(t *testing.T) {
	answer := "Use `<br>` for breaks.\n\n```go\nvar m map[string]Vec<String>\nif a<b && c>d {}\n```"

	out, err := NewPlainRenderer().Render(answer)

	require.NoError(t, err)
	assert.Equal(t, answer, out)
}

func TestSanitize_HTMLBlock(t *testing.T) {
	out := Sanitize("Intro\n\n<div onclick=\"x()\">\n<script>alert(1)</script>\n</div>\n\nOutro")

	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "Outro")
	assert.NotContains(t, out, "<div")
	assert.NotContains(t, out, "alert")
}

var sgrSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestGlamourRenderer_KeepsCode(t *testing.T) {
	r, err := NewGlamourRenderer("notty", 80)
	require.NoError(t, err)

	out, err := r.Render("Use `<br>` for breaks.\n\n```go\nvar m map[string]Vec<String>\nif a<b && c>d {}\n```")
	require.NoError(t, err)

	out = sgrSequence.ReplaceAllString(out, "")
	assert.Contains(t, out, "<br>")
	assert.Contains(t, out, "Vec<String>")
	assert.Contains(t, out, "a<b && c>d")
}

func TestGlamourRenderer_Render(t *testing.T) {
	r, err := NewGlamourRenderer("ascii", 60)
	require.NoError(t, err)

	out, err := r.Render("# Findings\n\nThe report covers <script>alert(1)</script>**three** topics.")
	require.NoError(t, err)

	assert.Contains(t, out, "Findings")
	assert.Contains(t, out, "three")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
	assert.False(t, strings.HasPrefix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestGlamourRenderer_SetWidth(t *testing.T) {
	r, err := NewGlamourRenderer("notty", 80)
	require.NoError(t, err)

	require.NoError(t, r.SetWidth(20))
	gr := r.(*glamourRenderer)
	assert.Equal(t, 20, gr.width)

	require.NoError(t, r.SetWidth(-3))
	assert.Equal(t, 0, gr.width)

	out, err := r.Render("short")
	require.NoError(t, err)
	assert.Contains(t, out, "short")
}

func TestNew_FallsBackToPlain(t *testing.T) {
	r, err := New("no-such-style", 80)
	require.Error(t, err)
	require.NotNil(t, r)

	out, renderErr := r.Render("<i>x</i>")
	require.NoError(t, renderErr)
	assert.Equal(t, "x", out)
}

func TestNew_Glamour(t *testing.T) {
	r, err := New("dark", 80)
	require.NoError(t, err)
	_, ok := r.(*glamourRenderer)
	assert.True(t, ok)
}
