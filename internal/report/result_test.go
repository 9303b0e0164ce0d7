package report

import (
	"strings"
	"testing"
)

func TestHeading(t *testing.T) {
	if got := Heading("modelA"); got != "Review by modelA" {
		t.Errorf("Heading: got %q, want %q", got, "Review by modelA")
	}
}

func TestPlainTextOrder(t *testing.T) {
	result := &ReviewResult{
		PaperName: "paper.pdf",
		Entries: []Entry{
			{ModelID: "modelA", Text: "textA"},
			{ModelID: "modelB", Text: "textB"},
		},
	}

	text := result.PlainText()

	posHeadA := strings.Index(text, "Review by modelA")
	posTextA := strings.Index(text, "textA")
	posHeadB := strings.Index(text, "Review by modelB")
	posTextB := strings.Index(text, "textB")

	for name, pos := range map[string]int{
		"heading A": posHeadA, "text A": posTextA,
		"heading B": posHeadB, "text B": posTextB,
	} {
		if pos < 0 {
			t.Fatalf("%s missing from output:\n%s", name, text)
		}
	}
	if !(posHeadA < posTextA && posTextA < posHeadB && posHeadB < posTextB) {
		t.Errorf("sections out of order:\n%s", text)
	}
}

func TestMarkdownHeadings(t *testing.T) {
	result := &ReviewResult{
		Entries: []Entry{{ModelID: "modelA", Text: "body"}},
	}

	md := result.Markdown()
	if !strings.Contains(md, "## Review by modelA") {
		t.Errorf("markdown heading missing:\n%s", md)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"paper.pdf", "referee_report_paper.docx"},
		{"/tmp/dir/my paper.pdf", "referee_report_my paper.docx"},
		{"noext", "referee_report_noext.docx"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.in); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
