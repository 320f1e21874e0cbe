package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "heading gets an anchor id",
			source: "# Getting Started",
			want:   []string{`<h1 id="getting-started">Getting Started</h1>`},
		},
		{
			name:   "emphasis and strong",
			source: "Some *light* and **heavy** emphasis.",
			want:   []string{"<em>light</em>", "<strong>heavy</strong>"},
		},
		{
			name:   "fenced code block",
			source: "```go\nfunc main() {}\n```",
			want:   []string{`<pre><code class="language-go">`},
		},
		{
			name:   "gfm table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:   []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "gfm strikethrough",
			source: "~~gone~~",
			want:   []string{"<del>gone</del>"},
		},
		{
			name:   "gfm autolink",
			source: "see https://example.com for details",
			want:   []string{`<a href="https://example.com">https://example.com</a>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Render([]byte(tt.source))
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, html, want)
			}
		})
	}
}

func TestRender_EmptySource(t *testing.T) {
	html, err := NewRenderer().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "", html)
}
