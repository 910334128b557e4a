package llm

import (
	"strings"
	"testing"
)

func TestBuildMenuDesignPrompt_IncludesMenuText(t *testing.T) {
	prompt := BuildMenuDesignPrompt("Paneer Tikka 250\nDal Makhani 180", StyleParams{}, nil, 0)

	if !strings.Contains(prompt, "Paneer Tikka 250") {
		t.Fatal("prompt must contain the menu text")
	}
	if !strings.Contains(prompt, "Output ONLY the HTML document") {
		t.Fatal("prompt must demand HTML-only output")
	}
}

func TestBuildMenuDesignPrompt_StyleConditionals(t *testing.T) {
	style := StyleParams{
		Template:     "elegant",
		PrimaryColor: "#1a1a2e",
		PriceStyle:   "aligned",
		Notes:        "include a chef's specials section",
	}

	prompt := BuildMenuDesignPrompt("menu", style, nil, 0)

	for _, want := range []string{"elegant", "#1a1a2e", "dotted leaders", "chef's specials"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	// Empty fields must not leave placeholder lines behind
	if strings.Contains(prompt, "Preferred font") {
		t.Fatal("font line should be omitted when unset")
	}
}

func TestBuildMenuDesignPrompt_RestaurantContext(t *testing.T) {
	rc := &RestaurantContext{Name: "Bella Roma", City: "Pune", CuisineType: "Italian"}
	prompt := BuildMenuDesignPrompt("menu", StyleParams{}, rc, 1)

	if !strings.Contains(prompt, "Bella Roma") || !strings.Contains(prompt, "Pune") {
		t.Fatal("prompt must mention the restaurant")
	}
	if !strings.Contains(prompt, "variant #2") {
		t.Fatal("variant seed must alter the prompt")
	}
}

func TestExtractHTML(t *testing.T) {
	doc := "<!DOCTYPE html><html><body>menu</body></html>"

	cases := map[string]string{
		"plain":      doc,
		"fenced":     "```html\n" + doc + "\n```",
		"preamble":   "Here is your menu design:\n\n" + doc,
		"trailing":   doc + "\n\nLet me know if you want changes!",
		"fence+talk": "Sure!\n```\n" + doc + "\n```\nEnjoy.",
	}

	for name, input := range cases {
		if got := ExtractHTML(input); got != doc {
			t.Fatalf("%s: got %q", name, got)
		}
	}

	if got := ExtractHTML("no markup here"); got != "" {
		t.Fatalf("expected empty result for non-html output, got %q", got)
	}
}
