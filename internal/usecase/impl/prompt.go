// Package impl contains the implementation of the application's business logic.
package impl

import (
	"fmt"
	"strings"

	"quill/internal/domain/entity"
)

// Prompts are the only protocol between this system and the non-deterministic
// generator: every formatting rule is enforced by instruction text, and the
// replies are trusted as-is.

// buildSectionPrompt returns the generation prompt for one section. Slide
// projects get the bullet-point template; everything else, including
// unrecognized doc types, gets the prose template.
func buildSectionPrompt(topic, heading string, docType entity.DocType) string {
	if docType.IsSlides() {
		return fmt.Sprintf(
			"ACT AS: An expert presentation designer and communication strategist for Fortune 500 companies.\n"+
				"TASK: Write the content for a single PowerPoint slide.\n"+
				"CONTEXT: The overall presentation topic is '%s'. The specific title of this slide is '%s'.\n\n"+
				"DESIGN CONSTRAINTS (MUST FOLLOW):\n"+
				"1. FORMAT: Provide exactly 4 to 5 bullet points. Do NOT write paragraphs. Do NOT write an introduction or conclusion.\n"+
				"2. LENGTH: Each bullet point must be EXTREMELY concise (maximum 15 words per bullet). Brevity is key for slides.\n"+
				"3. STYLE: Use active voice. Be punchy and impactful. Use strong verbs.\n"+
				"4. CONTENT: Focus on the most critical information relevant to the header. Avoid fluff.\n"+
				"5. HISTORY/TIMELINES: If the slide title implies a history, timeline, or sequence of events (e.g., 'History of AI', 'Evolution', years like '1990-2000'), YOU MUST START EACH BULLET WITH A SPECIFIC YEAR OR DATE (e.g., '1956: Dartmouth Workshop...').\n"+
				"6. MARKDOWN: You may use **bold** for key terms, but do not use other markdown formatting like headers (#).\n"+
				"7. OUTPUT: Return ONLY the bullet points.\n\n"+
				"GENERATE SLIDE CONTENT NOW:",
			topic, heading)
	}

	return fmt.Sprintf(
		"ACT AS: A senior technical writer and subject matter expert.\n"+
			"TASK: Write a detailed section for a professional business report or academic paper.\n"+
			"CONTEXT: The document topic is '%s'. The section heading is '%s'.\n\n"+
			"WRITING GUIDELINES:\n"+
			"1. DEPTH: Provide a comprehensive analysis of the specific heading. Do not be superficial.\n"+
			"2. STRUCTURE: Write 3-4 well-structured paragraphs. You may use a bulleted list within the text if it helps clarity, but the main format should be prose.\n"+
			"3. TONE: Formal, objective, and professional. Avoid slang or casual language.\n"+
			"4. LENGTH: Aim for approximately 250-350 words. Ensure the content is substantial.\n"+
			"5. FORMATTING: Use **bold** for key concepts or terminology. Use standard paragraphs.\n"+
			"6. COHESION: Ensure the text flows logically and directly addresses the heading.\n\n"+
			"WRITE SECTION CONTENT NOW:",
		topic, heading)
}

// buildRefinePrompt returns the mode-independent rewrite prompt.
func buildRefinePrompt(currentContent, instruction string) string {
	return fmt.Sprintf(
		"ACT AS: An expert editor.\n"+
			"TASK: Rewrite the following text based STRICTLY on the user's instruction.\n\n"+
			"ORIGINAL TEXT:\n%s\n\n"+
			"USER INSTRUCTION: %s\n\n"+
			"GUIDELINES:\n"+
			"1. If the instruction asks to shorten, be aggressive in cutting words.\n"+
			"2. If the instruction asks for formatting (bullets, list), apply it strictly.\n"+
			"3. Maintain the original factual accuracy unless told to change the content.\n"+
			"4. Return ONLY the rewritten text, no conversational filler.\n\n"+
			"REWRITTEN TEXT:",
		currentContent, instruction)
}

// buildOutlinePrompt returns the outline-suggestion prompt: exactly five raw
// titles, one per line, without numbering or bullet characters.
func buildOutlinePrompt(topic string, docType entity.DocType) string {
	itemType := "Section Headers"
	if docType.IsSlides() {
		itemType = "Slide Titles"
	}

	return fmt.Sprintf(
		"Generate a structured outline for a %s about '%s'. "+
			"Provide a list of 5 key %s. "+
			"Return ONLY the list items separated by newlines. "+
			"Do NOT use numbering (1., 2.) or bullets (*, -). Just the raw titles.",
		string(docType), topic, itemType)
}

// listMarkerCutset covers the leading markers the generator still emits when
// it ignores the outline instructions: digits, dots, dashes, asterisks,
// bullet characters and spaces.
const listMarkerCutset = "1234567890.-*• "

// cleanOutlineLines strips leading list markers from each line and drops
// blank lines, preserving the remaining order.
func cleanOutlineLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		title := strings.TrimSpace(strings.TrimLeft(line, listMarkerCutset))
		if title == "" {
			continue
		}
		cleaned = append(cleaned, title)
	}

	return cleaned
}
