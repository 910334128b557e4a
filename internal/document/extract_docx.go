package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"html"
	"io"
	"regexp"
	"strings"
)

var (
	docxParaEndRe = regexp.MustCompile(`</w:p>`)
	docxTabRe     = regexp.MustCompile(`<w:tab[^>]*/>`)
	docxBreakRe   = regexp.MustCompile(`<w:br[^>]*/>`)
	docxTagRe     = regexp.MustCompile(`<[^>]+>`)
)

// extractDocxText reads word/document.xml out of the docx zip and
// strips the markup. Paragraphs and explicit breaks become newlines,
// tabs become spaces.
func extractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.New("not a docx file")
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(io.LimitReader(rc, 8<<20))
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}

	if docXML == nil {
		return "", errors.New("docx missing word/document.xml")
	}

	text := string(docXML)
	text = docxParaEndRe.ReplaceAllString(text, "\n")
	text = docxBreakRe.ReplaceAllString(text, "\n")
	text = docxTabRe.ReplaceAllString(text, " ")
	text = docxTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	return strings.TrimSpace(text), nil
}
