package document

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var ErrNoReadableText = errors.New("no readable text found in document")

// ExtractText scrapes plain text out of an uploaded menu file.
// PDF and DOCX extraction are regex heuristics, not full parsers:
// good enough for menu documents, which are overwhelmingly text.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)

	switch ext {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	case ".txt":
		text, err = extractPlainText(data)
	default:
		return "", errors.New("unsupported file type")
	}

	if err != nil {
		return "", err
	}

	text = CleanMenuText(text)
	if strings.TrimSpace(text) == "" {
		return "", ErrNoReadableText
	}

	log.Printf("EXTRACT_DONE file=%s chars=%d", filename, len(text))
	return text, nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		// Strip the occasional stray byte rather than reject the file
		data = bytes.ToValidUTF8(data, nil)
	}
	return string(data), nil
}
