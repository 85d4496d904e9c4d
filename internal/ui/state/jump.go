package state

import (
	"strings"

	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// AppendQuery extends the type-to-jump query and moves the cursor to the
// best matching option. The option list itself is never reduced. It reports
// whether the cursor moved.
func (l *Level) AppendQuery(text string) bool {
	if text == "" {
		return false
	}
	l.Query += text
	return l.jump()
}

// DeleteQueryRune removes the last rune of the query and re-runs the jump.
func (l *Level) DeleteQueryRune() bool {
	runes := []rune(l.Query)
	if len(runes) == 0 {
		return false
	}
	l.Query = string(runes[:len(runes)-1])
	if strings.TrimSpace(l.Query) == "" {
		return false
	}
	return l.jump()
}

// ResetQuery clears the query without touching the cursor.
func (l *Level) ResetQuery() {
	l.Query = ""
}

func (l *Level) jump() bool {
	idx := BestMatchIndex(l.Items, l.Query)
	if idx < 0 || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	return true
}

// BestMatchIndex returns the index of the option best matching query, or -1
// when nothing matches. Exact, prefix and substring matches win over fuzzy
// ones; among fuzzy matches the shortest distance wins, then the earliest row.
func BestMatchIndex(items []menu.Option, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, menu.Labels(items))
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return -1
	}
	return best.OriginalIndex
}
