package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs become lines",
			in:   "<p>First paragraph.</p><p>Second <b>bold</b> one.</p>",
			want: "First paragraph.\nSecond bold one.",
		},
		{
			name: "br and headings",
			in:   "<h2>Title</h2>line one<br>line two<br/>line three",
			want: "Title\nline one\nline two\nline three",
		},
		{
			name: "list items",
			in:   "<ul><li>alpha</li><li>beta</li></ul>",
			want: "alpha\nbeta",
		},
		{
			name: "entities decoded",
			in:   "Tom &amp; Jerry &lt;3 &quot;cheese&quot; &#39;now&#39;&nbsp;please",
			want: `Tom & Jerry <3 "cheese" 'now' please`,
		},
		{
			name: "blank line runs collapse",
			in:   "<div>a</div>\n\n\n<div></div><div>   b    c  </div>",
			want: "a\n\nb c",
		},
		{
			name: "scripts dropped",
			in:   "<p>keep</p><script>var x = '<p>no</p>';</script><style>p{}</style>",
			want: "keep",
		},
		{
			name: "plain text passes through",
			in:   "  just text  ",
			want: "just text",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLToText(tt.in))
		})
	}
}
