package document

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"
	"regexp"
	"strings"
)

var (
	pdfStreamRe = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)
	// Parenthesized string operands of the Tj / TJ / ' show-text operators
	pdfShowTextRe = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*(?:Tj|')`)
	pdfTJArrayRe  = regexp.MustCompile(`\[((?:[^\[\]\\]|\\.)*)\]\s*TJ`)
	pdfStringRe   = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
	pdfNewlineOp  = regexp.MustCompile(`(?:\)\s*(?:T\*|Td|TD))`)
)

// extractPDFText scrapes show-text operators out of the PDF's content
// streams, inflating FlateDecode streams where possible. This is a
// heuristic, not a PDF parser: it recovers the text layer of typical
// text-based menus and returns nothing useful for scanned images.
func extractPDFText(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", errors.New("not a pdf file")
	}

	var b strings.Builder

	streams := pdfStreamRe.FindAllSubmatch(data, -1)
	for _, m := range streams {
		content := m[1]

		if inflated, err := inflate(content); err == nil {
			content = inflated
		}

		collectShowText(&b, content)
	}

	// Some generators put content streams outside stream objects;
	// fall back to scanning the raw body once if nothing was found.
	if b.Len() == 0 {
		collectShowText(&b, data)
	}

	return b.String(), nil
}

func collectShowText(b *strings.Builder, content []byte) {
	// Insert line breaks where the content stream moves the text cursor
	normalized := pdfNewlineOp.ReplaceAll(content, []byte(")\n"))

	for _, m := range pdfShowTextRe.FindAllSubmatch(normalized, -1) {
		b.WriteString(unescapePDFString(string(m[1])))
		b.WriteString("\n")
	}

	for _, m := range pdfTJArrayRe.FindAllSubmatch(normalized, -1) {
		for _, s := range pdfStringRe.FindAllSubmatch(m[1], -1) {
			b.WriteString(unescapePDFString(string(s[1])))
		}
		b.WriteString("\n")
	}
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, 4<<20))
	if err != nil {
		return nil, err
	}
	return out, nil
}

var pdfEscapes = strings.NewReplacer(
	`\(`, "(",
	`\)`, ")",
	`\\`, `\`,
	`\n`, "\n",
	`\r`, "",
	`\t`, "\t",
)

func unescapePDFString(s string) string {
	return pdfEscapes.Replace(s)
}
