package document

import (
	"regexp"
	"strings"
)

// maxCleanTextLength keeps extracted text comfortably inside the LLM
// context window.
const maxCleanTextLength = 15000

var noiseLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*page\s*\d+\s*$`),    // "Page 1"
	regexp.MustCompile(`(?i)^\s*\d+\s*/\s*\d+\s*$`), // "1/5"
	regexp.MustCompile(`^\s*\d+\s*$`),               // Standalone numbers
	regexp.MustCompile(`(?i)^\s*confidential\s*$`),
}

var priceLikeRe = regexp.MustCompile(`^[₹$€£]?\d*\.?\d+$`)

// CleanMenuText normalizes extracted document text before it reaches
// the prompt builder: drops page-number noise, collapses whitespace,
// strips artifacts, and truncates to the LLM-safe length.
func CleanMenuText(rawText string) string {
	if rawText == "" {
		return rawText
	}

	text := removeNoiseLines(rawText)
	text = normalizeWhitespace(text)
	text = removeArtifacts(text)
	text = smartTruncate(text)

	return text
}

func removeNoiseLines(text string) string {
	lines := strings.Split(text, "\n")
	var cleanLines []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		shouldRemove := false

		for _, pattern := range noiseLinePatterns {
			if pattern.MatchString(trimmed) {
				shouldRemove = true
				break
			}
		}

		// Very short lines are usually noise, unless they look like a price
		if !shouldRemove && len(trimmed) < 3 && trimmed != "" {
			if !priceLikeRe.MatchString(trimmed) {
				shouldRemove = true
			}
		}

		if !shouldRemove {
			cleanLines = append(cleanLines, line)
		}
	}

	return strings.Join(cleanLines, "\n")
}

func normalizeWhitespace(text string) string {
	text = regexp.MustCompile(`[ \t]+`).ReplaceAllString(text, " ")
	text = regexp.MustCompile(`\n{3,}`).ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func removeArtifacts(text string) string {
	artifacts := []string{
		"��", "�", "\f",
		"©", "™", "®",
	}

	for _, artifact := range artifacts {
		text = strings.ReplaceAll(text, artifact, "")
	}

	return text
}

func smartTruncate(text string) string {
	if len(text) <= maxCleanTextLength {
		return text
	}

	truncated := text[:maxCleanTextLength]

	// Prefer cutting at a paragraph break
	if idx := strings.LastIndex(truncated, "\n\n"); idx > maxCleanTextLength/2 {
		truncated = truncated[:idx]
	}

	return truncated
}
