package gemini

import "strings"

// BuildPrompt embeds the pending titles, in the given order, into the
// summarization instructions. The output is meant to be posted into a
// chat message as-is.
func BuildPrompt(titles []string) string {
	var b strings.Builder
	b.WriteString("Please provide a concise summary of the following pending to-do items. ")
	b.WriteString("Give an overview of the overall workload, flag anything urgent or time-sensitive, ")
	b.WriteString("group related items together, call out explicit deadlines, and recommend next actions. ")
	b.WriteString("Do not include completed tasks. Keep it short enough to post directly into a chat message. ")
	b.WriteString("Pending tasks:\n\n")
	for _, t := range titles {
		b.WriteString("- ")
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String()
}
