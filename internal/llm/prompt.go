package llm

import (
	"strings"

	"github.com/marketlens/marketlens/internal/fields"
)

// BuildSystemPrompt composes the system message: envelope shape, per-field
// instructions, and the N/A sentinel rule.
func BuildSystemPrompt(schema fields.Schema) string {
	var b strings.Builder
	b.WriteString("You are an analyst that extracts structured information from web page text. ")
	b.WriteString("Return ONLY a JSON object of the shape ")
	b.WriteString(`{"summary": string, "structured": {<field>: string}}. `)
	b.WriteString("The 'summary' is a short description of the page's value proposition. ")
	b.WriteString("The 'structured' object MUST contain every field below, in this order. ")
	b.WriteString(`Use the string "N/A" for any field you cannot find; never omit a key and never output null. `)
	b.WriteString("Fields:")
	for _, f := range schema {
		b.WriteString("\n- ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Instruction)
	}
	return b.String()
}

// BuildUserPrompt combines the target's own instructions with the page text.
func BuildUserPrompt(instructions, text string) string {
	if strings.TrimSpace(instructions) == "" {
		instructions = "Extract the main value proposition and key features from this text."
	}
	var b strings.Builder
	b.WriteString("Prompt: ")
	b.WriteString(instructions)
	b.WriteString("\n\nWeb Page Text:\n")
	b.WriteString(text)
	return b.String()
}
