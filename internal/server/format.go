package server

import (
	"fmt"
	"time"

	"blogfront/internal/cms"
)

// timeAgo renders a coarse relative timestamp for post cards.
func timeAgo(t time.Time) string {
	diff := time.Since(t)
	days := int(diff.Hours() / 24)
	hours := int(diff.Hours())
	minutes := int(diff.Minutes())

	switch {
	case days > 0:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case hours > 0:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	default:
		return "Just now"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// summary extracts the first paragraph's text from a post body, truncated at
// 200 runes.
func summary(rt *cms.RichText) string {
	if rt == nil {
		return ""
	}
	for _, node := range rt.Root.Children {
		if node.Type != "paragraph" {
			continue
		}
		var parts []string
		for _, child := range node.Children {
			parts = append(parts, child.Text)
		}
		text := joinNonEmpty(parts)
		if len([]rune(text)) > 200 {
			return string([]rune(text)[:200]) + "..."
		}
		return text
	}
	return ""
}

func joinNonEmpty(parts []string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
