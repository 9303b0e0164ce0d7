package report

import (
	"archive/zip"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocxFileSinkWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "referee_report_paper.docx")
	result := &ReviewResult{
		PaperName: "paper.pdf",
		Entries: []Entry{
			{ModelID: "modelA", Text: "textA"},
			{ModelID: "modelB", Text: "textB"},
		},
	}

	sink := NewDocxFileSink(out)
	if err := sink.Write(context.Background(), result); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// DOCX は ZIP コンテナなので word/document.xml を直接検査する
	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("output is not a valid zip container: %v", err)
	}
	defer zr.Close()

	var docXML string
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document.xml: %v", err)
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatalf("read document.xml: %v", err)
			}
			docXML = string(data)
		}
	}
	if docXML == "" {
		t.Fatal("word/document.xml not found in the generated file")
	}

	posHeadA := strings.Index(docXML, "Review by modelA")
	posTextA := strings.Index(docXML, "textA")
	posHeadB := strings.Index(docXML, "Review by modelB")
	posTextB := strings.Index(docXML, "textB")

	if posHeadA < 0 || posTextA < 0 || posHeadB < 0 || posTextB < 0 {
		t.Fatalf("expected sections missing from document.xml")
	}
	if !(posHeadA < posTextA && posTextA < posHeadB && posHeadB < posTextB) {
		t.Error("sections are not in declaration order")
	}
}
