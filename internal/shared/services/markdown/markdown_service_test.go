package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_BasicMarkdown(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("# Hello\n\nSome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderer_StripsScriptTags(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("hi <script>alert(1)</script> there")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
}

func TestRenderer_GFMStrikethrough(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("~~gone~~")
	require.NoError(t, err)
	assert.Contains(t, out, "<del>gone</del>")
}
