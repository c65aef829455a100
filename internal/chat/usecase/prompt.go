package usecase

import (
	"fmt"
	"strings"

	"personal-ai-partner/internal/model"
)

// BuildContext assembles the conversational context block: all knowledge
// entries first (one per line), then the given turns in chronological order
// labeled by role. Identical inputs yield identical output. Entries longer
// than maxEntryChars runes are truncated; the window is cut by turn count
// only, so callers pick the recent slice.
func BuildContext(knowledge []model.KnowledgeEntry, turns []model.ConversationTurn, maxEntryChars int) string {
	var b strings.Builder

	for _, entry := range knowledge {
		b.WriteString(truncateText(entry.Text, maxEntryChars))
		b.WriteString("\n")
	}

	if len(knowledge) > 0 && len(turns) > 0 {
		b.WriteString("\n")
	}

	for _, turn := range turns {
		b.WriteString(string(turn.Role))
		b.WriteString(": ")
		b.WriteString(truncateText(turn.Text, maxEntryChars))
		b.WriteString("\n")
	}

	return b.String()
}

// buildPrompt embeds the context block and the user message into the final
// prompt text sent to the completion service.
func buildPrompt(contextBlock, userText string) string {
	return fmt.Sprintf(`ユーザーのデータ：
%s
ユーザーの質問：%s

回答：`, contextBlock, userText)
}

// lastTurns returns the trailing window of at most n turns.
func lastTurns(turns []model.ConversationTurn, n int) []model.ConversationTurn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

// truncateText safely truncates text to maxLen runes (Unicode-safe).
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "…"
}
