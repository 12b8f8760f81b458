package gen

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the model instruction for a generation request.
// The instruction pins the response contract: a single JSON object with
// a "slides" array, one object per slide, first slide a TitleSlide and
// last a ConclusionSlide or Q&A.
func BuildPrompt(p Params) string {
	var b strings.Builder

	b.WriteString("You are a world-class presentation designer and expert content strategist. ")
	b.WriteString("Your task is to generate the complete structure and content for a presentation ")
	b.WriteString("that is both informative and engaging, based on user requirements and a specific visual theme.\n\n")

	b.WriteString("**Core Task:**\n")
	switch p.Mode {
	case ModeOutline:
		b.WriteString("- Expand the following slide outline into full slide content, one slide per entry:\n")
		for i, entry := range p.Outline {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, entry)
		}
	default:
		fmt.Fprintf(&b, "- Main Topic/Prompt: %q\n", p.Prompt)
	}
	fmt.Fprintf(&b, "- Total Number of Slides: %d\n\n", p.SlideCount)

	b.WriteString("**Content Philosophy:**\n")
	b.WriteString("- Create a narrative: construct a logical, story-driven flow where each slide transitions into the next.\n")
	b.WriteString("- Substantive content: explain why something matters and how it connects to real-world scenarios.\n")
	b.WriteString("- Balanced pacing: keep content volume consistent across ContentSlide entries.\n\n")

	t := p.Theme
	if t.Name != "" {
		b.WriteString("**Visual Theme Guidelines:**\n")
		fmt.Fprintf(&b, "- Theme Name: %q\n", t.Name)
		if t.Description != "" {
			fmt.Fprintf(&b, "- Style Description: %q\n", t.Description)
		}
		fmt.Fprintf(&b, "- Key Colors: Primary (%s), Secondary (%s), Background (%s).\n",
			t.PrimaryColor, t.SecondaryColor, t.BackgroundColor)
		b.WriteString("- Image suggestions must NOT include any embedded or overlaid text or typography.\n\n")
	}

	b.WriteString("**Instructions:**\n")
	b.WriteString("1. Your response MUST be a single, valid JSON object with no text outside of it.\n")
	b.WriteString(`2. The root must be a key named "slides" holding an array of slide objects.` + "\n")
	fmt.Fprintf(&b, "3. Generate exactly %d slide objects.\n", p.SlideCount)
	b.WriteString("4. The first slide must be a 'TitleSlide' and the last a 'ConclusionSlide' or 'Q&A'.\n")
	b.WriteString("5. Each slide object must include:\n")
	b.WriteString("   - \"slideNumber\": (Number)\n")
	b.WriteString("   - \"type\": (String) one of \"TitleSlide\", \"AgendaSlide\", \"ContentSlide\", \"ConclusionSlide\", \"Q&A\".\n")
	b.WriteString("   - \"header\": (String) a short, persistent header.\n")
	b.WriteString("   - \"title\": (String) an impactful, slide-specific title.\n")
	b.WriteString("   - \"content\": (String) markdown-style bullet points. Begin each bullet with a **bolded concept**, ")
	b.WriteString("followed by 1-2 information-rich sentences. Aim for 3-5 bullets per ContentSlide.\n")
	b.WriteString("   - \"speakerNotes\": (String) a comprehensive speaker script expanding on the bullets.\n")
	b.WriteString("   - \"footer\": (String) consistent footer text for all slides.\n")
	b.WriteString("   - \"imageSuggestion\": (Object) with \"description\" (a visual prompt without visible text) ")
	b.WriteString("and \"style\" (e.g. \"photorealistic\", \"minimalist vector art\", \"abstract shapes\").\n")
	b.WriteString("6. Do not include backticks, code fences, or any text outside the JSON object.\n")

	return b.String()
}
