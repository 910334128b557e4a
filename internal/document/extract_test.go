package document

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func TestExtractText_Docx(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Paneer Tikka</w:t></w:r><w:tab/><w:r><w:t>250</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Dal Makhani &amp; Rice</w:t></w:r><w:tab/><w:r><w:t>180</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := ExtractText("menu.docx", docx)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(text, "Paneer Tikka 250") {
		t.Fatalf("missing first item, got %q", text)
	}
	if !strings.Contains(text, "Dal Makhani & Rice 180") {
		t.Fatalf("entities not unescaped, got %q", text)
	}
}

func TestExtractText_DocxInvalid(t *testing.T) {
	if _, err := ExtractText("menu.docx", []byte("not a zip")); err == nil {
		t.Fatal("expected error for invalid docx")
	}
}

func TestExtractText_PDF(t *testing.T) {
	// Minimal uncompressed content stream with show-text operators
	pdf := []byte("%PDF-1.4\n" +
		"1 0 obj << /Length 90 >>\n" +
		"stream\n" +
		"BT /F1 12 Tf (Paneer Tikka  250) Tj T* (Dal Makhani  180) Tj ET\n" +
		"endstream\n" +
		"endobj\n%%EOF")

	text, err := ExtractText("menu.pdf", pdf)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(text, "Paneer Tikka 250") {
		t.Fatalf("missing first item, got %q", text)
	}
	if !strings.Contains(text, "Dal Makhani 180") {
		t.Fatalf("missing second item, got %q", text)
	}
}

func TestExtractText_PDFNotAPDF(t *testing.T) {
	if _, err := ExtractText("menu.pdf", []byte("hello")); err == nil {
		t.Fatal("expected error for non-pdf bytes")
	}
}

func TestExtractText_Txt(t *testing.T) {
	text, err := ExtractText("menu.txt", []byte("Starters\nPaneer Tikka 250\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Paneer Tikka 250") {
		t.Fatalf("got %q", text)
	}
}

func TestExtractText_EmptyResult(t *testing.T) {
	if _, err := ExtractText("menu.txt", []byte("   \n  \n")); err != ErrNoReadableText {
		t.Fatalf("expected ErrNoReadableText, got %v", err)
	}
}

func TestCleanMenuText_RemovesNoise(t *testing.T) {
	raw := "Page 1\nStarters\n\n\n\nPaneer   Tikka   250\n3/5\n42\n© 2024"

	text := CleanMenuText(raw)

	if strings.Contains(text, "Page 1") || strings.Contains(text, "3/5") {
		t.Fatalf("page noise not removed: %q", text)
	}
	if !strings.Contains(text, "Paneer Tikka 250") {
		t.Fatalf("whitespace not normalized: %q", text)
	}
	if strings.Contains(text, "©") {
		t.Fatalf("artifacts not removed: %q", text)
	}
}

func TestCleanMenuText_Truncates(t *testing.T) {
	para := strings.Repeat("Dish 100\n", 500) + "\n\n"
	raw := strings.Repeat(para, 10)

	text := CleanMenuText(raw)

	if len(text) > maxCleanTextLength {
		t.Fatalf("text not truncated: %d chars", len(text))
	}
}

func TestValidateFileExtension(t *testing.T) {
	for _, ok := range []string{"menu.pdf", "menu.docx", "menu.txt", "MENU.PDF"} {
		if err := ValidateFileExtension(ok); err != nil {
			t.Fatalf("%s should be allowed: %v", ok, err)
		}
	}
	for _, bad := range []string{"menu.exe", "menu.jpg", "menu"} {
		if err := ValidateFileExtension(bad); err == nil {
			t.Fatalf("%s should be rejected", bad)
		}
	}
}
