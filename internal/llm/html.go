package llm

import "strings"

// ExtractHTML pulls the HTML document out of a model response.
// Models occasionally wrap output in markdown fences or add a
// sentence of preamble despite instructions; both are stripped.
func ExtractHTML(output string) string {
	text := strings.TrimSpace(output)

	// Strip markdown fences
	if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+3:]
		text = strings.TrimPrefix(text, "html")
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	// Cut any preamble before the document starts
	lower := strings.ToLower(text)
	start := strings.Index(lower, "<!doctype")
	if start < 0 {
		start = strings.Index(lower, "<html")
	}
	if start < 0 {
		return ""
	}
	text = text[start:]

	// Drop trailing chatter after </html>
	if end := strings.LastIndex(strings.ToLower(text), "</html>"); end >= 0 {
		text = text[:end+len("</html>")]
	}

	return text
}
