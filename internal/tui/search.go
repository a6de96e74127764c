package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/fireflytui/internal/database/repository"
)

// matchAccounts returns the accounts whose names match query, best match
// first. Substring hits rank ahead of typo-tolerant hits; an empty query
// keeps every account in its original order.
func matchAccounts(accounts []repository.Account, query string) []repository.Account {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]repository.Account, len(accounts))
		copy(out, accounts)
		return out
	}

	type scored struct {
		acct  repository.Account
		score int
		order int
	}
	var hits []scored
	for i, a := range accounts {
		if s, ok := matchScore(strings.ToLower(a.Name), query); ok {
			hits = append(hits, scored{acct: a, score: s, order: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score < hits[j].score
		}
		return hits[i].order < hits[j].order
	})
	out := make([]repository.Account, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.acct)
	}
	return out
}

// matchScore is 0 for a prefix hit, 1 for any other substring hit and
// 2+distance for a word within the typo budget.
func matchScore(name, query string) (int, bool) {
	if strings.HasPrefix(name, query) {
		return 0, true
	}
	if strings.Contains(name, query) {
		return 1, true
	}
	budget := len([]rune(query)) / 3
	if budget == 0 {
		return 0, false
	}
	best := -1
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		if len(r) > len([]rune(query)) {
			word = string(r[:len([]rune(query))])
		}
		d := levenshtein.ComputeDistance(word, query)
		if d <= budget && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return 2 + best, true
}
