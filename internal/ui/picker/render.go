package picker

import (
	"fmt"
	"strings"

	"github.com/raphi011/gb/internal/match"
)

// listView is everything the list rendering depends on. Rendering is a
// pure function of this struct so it can be tested without a terminal.
type listView struct {
	Matches    []match.Match
	Query      string
	Cursor     int // position in the combined list (create row included)
	ShowCreate bool
	MaxVisible int
}

// rowCount returns the number of rows in the combined list.
func (v listView) rowCount() int {
	n := len(v.Matches)
	if v.ShowCreate {
		n++
	}
	return n
}

// renderList renders the filtered branch rows with a scroll window,
// cursor marker and matched-character highlighting.
func renderList(v listView) string {
	var b strings.Builder

	total := v.rowCount()
	if total == 0 {
		b.WriteString(OptionNormalStyle().Render("  No matching branches") + "\n")
		return b.String()
	}

	maxVisible := v.MaxVisible
	if maxVisible <= 0 {
		maxVisible = defaultMaxVisible
	}

	start := 0
	if v.Cursor >= maxVisible {
		start = v.Cursor - maxVisible + 1
	}
	end := min(start+maxVisible, total)

	if start > 0 {
		b.WriteString(OptionNormalStyle().Render("  ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		selected := i == v.Cursor

		cursor := "  "
		if selected {
			cursor = "> "
		}

		if v.ShowCreate && i == 0 {
			style := OptionNormalStyle()
			if selected {
				style = OptionSelectedStyle()
			}
			b.WriteString(cursor + style.Render(fmt.Sprintf("+ Create %q", v.Query)) + "\n")
			continue
		}

		idx := i
		if v.ShowCreate {
			idx = i - 1
		}
		m := v.Matches[idx]

		label := renderLabel(m, selected, v.Query != "")
		if m.Candidate.Remote {
			label += RemoteTagStyle().Render(" (remote)")
		}
		b.WriteString(cursor + label + "\n")
	}

	if end < total {
		b.WriteString(OptionNormalStyle().Render("  ↓ more below") + "\n")
	}

	return b.String()
}

// renderLabel renders a branch name, highlighting matched runes when a
// query is active.
func renderLabel(m match.Match, selected, filtering bool) string {
	style := OptionNormalStyle()
	if selected {
		style = OptionSelectedStyle()
	}

	if !filtering || len(m.Positions) == 0 {
		return style.Render(m.Candidate.Name)
	}

	matched := make(map[int]bool, len(m.Positions))
	for _, p := range m.Positions {
		matched[p] = true
	}

	var b strings.Builder
	for i, r := range []rune(m.Candidate.Name) {
		if matched[i] {
			b.WriteString(MatchHighlightStyle().Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}
