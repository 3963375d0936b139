// internal/domain/cycle/history.go
package cycle

import "sort"

// History is the ordered list of recorded cycle-start dates, ascending.
// Duplicates are kept.
type History []Date

// Insert returns a new History with d added, re-sorted ascending.
// The sort is stable so equal dates keep their insertion order.
func (h History) Insert(d Date) History {
	out := make(History, 0, len(h)+1)
	out = append(out, h...)
	out = append(out, d)
	out.sort()
	return out
}

func (h History) sort() {
	sort.SliceStable(h, func(i, j int) bool { return h[i].Before(h[j]) })
}

// Sorted returns an ascending copy of h.
func (h History) Sorted() History {
	out := append(History(nil), h...)
	out.sort()
	return out
}

// Last returns the most recent date.
func (h History) Last() (Date, bool) {
	if len(h) == 0 {
		return Date{}, false
	}
	return h[len(h)-1], true
}

// Descending returns a most-recent-first copy.
func (h History) Descending() []Date {
	out := make([]Date, len(h))
	for i, d := range h {
		out[len(h)-1-i] = d
	}
	return out
}

// Tokens returns the storage tokens in order.
func (h History) Tokens() []string {
	out := make([]string, len(h))
	for i, d := range h {
		out[i] = d.String()
	}
	return out
}
