package services

import (
	"bytes"
	"testing"
)

func TestGenerateQuotePDF(t *testing.T) {
	out, err := GenerateQuotePDF(testQuoteExport(t))
	if err != nil {
		t.Fatalf("GenerateQuotePDF: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("GenerateQuotePDF returned empty bytes")
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF- header, got %q", out[:min(8, len(out))])
	}
}

func TestGenerateQuotePDF_NoRows(t *testing.T) {
	out, err := GenerateQuotePDF(NewBuilder(nil, nil).ExportData("PE-EMPTY", "today"))
	if err != nil {
		t.Fatalf("GenerateQuotePDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("empty quote did not render a PDF")
	}
}
