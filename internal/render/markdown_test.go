package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"penulis/internal/render"
)

func TestRenderer_HTML(t *testing.T) {
	r := render.NewRenderer()

	html, err := r.HTML("## Getting Started\n\nSome *emphasis* and a [link](https://example.com).")
	require.NoError(t, err)
	require.Contains(t, html, "<h2")
	require.Contains(t, html, "<em>emphasis</em>")
	require.Contains(t, html, `href="https://example.com"`)
}

func TestRenderer_HTML_SanitizesScript(t *testing.T) {
	r := render.NewRenderer()

	html, err := r.HTML("Hello <script>alert(1)</script> world")
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "Hello")
}

func TestRenderer_HTML_Empty(t *testing.T) {
	r := render.NewRenderer()

	html, err := r.HTML("")
	require.NoError(t, err)
	require.Empty(t, html)
}

func TestRenderer_HTML_GFMList(t *testing.T) {
	r := render.NewRenderer()

	html, err := r.HTML("- satu\n- dua\n- tiga")
	require.NoError(t, err)
	require.Contains(t, html, "<ul>")
	require.Contains(t, html, "<li>satu</li>")
}
