package llm

import (
	"fmt"
	"strings"
)

// StyleParams carries everything the owner chose in the design wizard.
// Empty fields are simply left out of the prompt.
type StyleParams struct {
	Template       string `json:"template"`        // modern | classic | rustic | elegant | minimal
	PrimaryColor   string `json:"primary_color"`   // hex
	SecondaryColor string `json:"secondary_color"` // hex
	Font           string `json:"font"`
	Tone           string `json:"tone"`        // upscale | casual | family | street-food
	PriceStyle     string `json:"price_style"` // aligned | inline | hidden
	Notes          string `json:"notes"`       // free-form instructions
}

// RestaurantContext is optional identity the prompt can mention.
type RestaurantContext struct {
	Name        string
	City        string
	CuisineType string
	Description string
}

var templateHints = map[string]string{
	"modern":  "Clean sans-serif typography, generous whitespace, flat color blocks.",
	"classic": "Serif typography, centered headings, subtle ornamental dividers.",
	"rustic":  "Warm earthy palette, textured-looking backgrounds, handwritten-style accents.",
	"elegant": "High contrast, thin serif fonts, gold or muted accent colors, fine rules between sections.",
	"minimal": "Monochrome, small type scale, maximum restraint, no decoration.",
}

// BuildMenuDesignPrompt assembles the design prompt for one variant.
// variantSeed nudges the model toward a different take per variant.
func BuildMenuDesignPrompt(
	menuText string,
	style StyleParams,
	restaurant *RestaurantContext,
	variantSeed int,
) string {
	var b strings.Builder

	b.WriteString(`You are a professional restaurant menu designer.

Your task:
- Turn the menu text below into a COMPLETE, self-contained HTML document.
- All CSS must be inline in a single <style> block inside <head>.
- NO external resources: no web fonts, no images, no scripts, no CDN links.
- The layout must print well on A4 and read well on a phone.
- Keep every dish and price from the menu text. Do NOT invent dishes.
- Output ONLY the HTML document. No explanations. No markdown fences.
`)

	if restaurant != nil && restaurant.Name != "" {
		b.WriteString(fmt.Sprintf("\nThe restaurant is %q", restaurant.Name))
		if restaurant.CuisineType != "" {
			b.WriteString(fmt.Sprintf(", a %s restaurant", strings.ToLower(restaurant.CuisineType)))
		}
		if restaurant.City != "" {
			b.WriteString(fmt.Sprintf(" in %s", restaurant.City))
		}
		b.WriteString(".\n")
		if restaurant.Description != "" {
			b.WriteString("About the restaurant: " + restaurant.Description + "\n")
		}
	}

	b.WriteString("\nStyle direction:\n")

	if hint, ok := templateHints[strings.ToLower(style.Template)]; ok {
		b.WriteString(fmt.Sprintf("- Template: %s. %s\n", style.Template, hint))
	}
	if style.PrimaryColor != "" {
		b.WriteString("- Primary color: " + style.PrimaryColor + "\n")
	}
	if style.SecondaryColor != "" {
		b.WriteString("- Secondary/accent color: " + style.SecondaryColor + "\n")
	}
	if style.Font != "" {
		b.WriteString("- Preferred font family (system fallbacks allowed): " + style.Font + "\n")
	}
	if style.Tone != "" {
		b.WriteString("- Overall tone: " + style.Tone + "\n")
	}
	switch style.PriceStyle {
	case "aligned":
		b.WriteString("- Prices right-aligned with dotted leaders.\n")
	case "inline":
		b.WriteString("- Prices inline after each dish name.\n")
	case "hidden":
		b.WriteString("- Do not show prices.\n")
	}
	if style.Notes != "" {
		b.WriteString("- Additional instructions: " + style.Notes + "\n")
	}

	if variantSeed > 0 {
		b.WriteString(fmt.Sprintf(
			"\nThis is design variant #%d: make a noticeably different layout choice than a first draft would (different section arrangement, header treatment, or column count).\n",
			variantSeed+1,
		))
	}

	b.WriteString("\nMENU TEXT:\n")
	b.WriteString(menuText)

	return b.String()
}
