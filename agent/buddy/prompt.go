package buddy

import (
	_ "embed"
	"strings"

	contractx "alexbuddy/agent/contract"
)

//go:embed template/persona.txt
var personaRaw string

// Persona returns the trimmed system persona for the buddy agent.
func Persona() string {
	return strings.TrimSpace(personaRaw)
}

// renderPrompt lays out the persona followed by the role-tagged transcript,
// ending with an assistant cue. The transcript already contains the current
// human turn as its last record.
func renderPrompt(history []contractx.ConversationRecord) string {
	var b strings.Builder
	b.WriteString(Persona())
	b.WriteString("\n\n")
	for _, rec := range history {
		b.WriteString(string(rec.Role))
		b.WriteString(": ")
		b.WriteString(rec.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}

func summaryPrompt(message string) string {
	return "Summarize the following within 50 words: " + message
}
