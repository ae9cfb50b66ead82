package sanitize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain question", "plain question"},
		{"<b>bold</b> move", "bold move"},
		{"  <script>alert(1)</script>hi  ", "hi"},
		{"&lt;img src=x onerror=y&gt;after", "after"},
		{"tom &amp; jerry", "tom & jerry"},
		{"bell\x07 and \x1b[31mred\x1b[0m", "bell and [31mred[0m"},
	}
	for _, tc := range cases {
		if got := Text(tc.input); got != tc.want {
			t.Fatalf("Text(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTextPtr(t *testing.T) {
	if TextPtr(nil) != nil {
		t.Fatal("expected nil for nil input")
	}
	in := "<i>x</i>"
	if got := TextPtr(&in); got == nil || *got != "x" {
		t.Fatalf("unexpected result %v", got)
	}
}
