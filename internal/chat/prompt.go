package chat

import "strings"

const preamble = "You are a professional ATS Resume AI assistant."

// BuildPrompt grounds the user's question in the resume text.
func BuildPrompt(resumeText, question string) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\nResume:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nUser Question:\n")
	b.WriteString(question)
	b.WriteString("\n")
	return b.String()
}
