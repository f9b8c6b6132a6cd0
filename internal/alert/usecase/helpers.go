package usecase

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"ttiring-notification-srv/pkg/discord"
)

const (
	fieldValueLimit = 1024
	footerText      = "Notification Service • Dispatch Monitor"
)

func buildField(name, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	return discord.EmbedField{
		Name:   name,
		Value:  truncateText(value, fieldValueLimit),
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	if max < 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// formatKinds renders counts as "invalid_token: 3, timeout: 1", sorted by kind.
func formatKinds(byKind map[string]int) string {
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s: %d", k, byKind[k]))
	}
	return strings.Join(parts, ", ")
}
