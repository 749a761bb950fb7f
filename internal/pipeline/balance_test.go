package pipeline

import "testing"

func TestBalanceParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "balanced passes through",
			input: "<p>a<br />b</p>\n<h4>章</h4>\n<p>c</p>",
			want:  "<p>a<br />b</p>\n<h4>章</h4>\n<p>c</p>",
		},
		{
			name:  "stray close dropped",
			input: "<p>a</p></p>",
			want:  "<p>a</p>",
		},
		{
			name:  "unclosed paragraph closed",
			input: "<p>a",
			want:  "<p>a</p>",
		},
		{
			name:  "nested open closes previous",
			input: "<p>a<p>b</p>",
			want:  "<p>a</p><p>b</p>",
		},
		{
			name:  "boundary line breaks removed",
			input: "<p><br />a<br />b<br /></p>",
			want:  "<p>a<br />b</p>",
		},
		{
			name:  "empty paragraph removed",
			input: "<p></p><p>a</p>",
			want:  "<p>a</p>",
		},
		{
			name:  "paragraph of breaks removed",
			input: "<p><br /><br /></p>",
			want:  "",
		},
		{
			name:  "page-break paragraph kept when empty",
			input: `<p>a<br /></p><p class="page-break"></p>`,
			want:  `<p>a</p><p class="page-break"></p>`,
		},
		{
			name:  "page-break split inside paragraph",
			input: `<p>a<br /></p><p class="page-break"><br />b</p>`,
			want:  `<p>a</p><p class="page-break">b</p>`,
		},
		{
			name:  "entities preserved",
			input: "<p>a &lt; b &amp; c</p>",
			want:  "<p>a &lt; b &amp; c</p>",
		},
		{
			name:  "inline markup preserved",
			input: `<p><ruby>東京<rp>（</rp><rt>とうきょう</rt><rp>）</rp></ruby></p>`,
			want:  `<p><ruby>東京<rp>（</rp><rt>とうきょう</rt><rp>）</rp></ruby></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BalanceParagraphs(tt.input); got != tt.want {
				t.Errorf("BalanceParagraphs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
