package models

import "strings"

// Several models persist small string lists (goal tags, food items,
// reminder times) as one comma-separated text column.

func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func JoinList(items []string) string {
	return strings.Join(items, ",")
}
