package console

import "strings"

// LevelSet is the set of severities currently enabled for display
type LevelSet map[Level]bool

// NewLevelSet creates a set containing the given levels
func NewLevelSet(levels ...Level) LevelSet {
	set := make(LevelSet, len(levels))
	for _, level := range levels {
		set[level] = true
	}

	return set
}

// AllLevels returns a set with all five severities enabled
func AllLevels() LevelSet {
	return NewLevelSet(Levels...)
}

// Has returns whether a level is enabled
func (s LevelSet) Has(level Level) bool {
	return s[level]
}

// Clone returns a copy of the set
func (s LevelSet) Clone() LevelSet {
	out := make(LevelSet, len(s))
	for level, enabled := range s {
		if enabled {
			out[level] = true
		}
	}

	return out
}

// FilterState holds the level set and search term driving visibility
type FilterState struct {
	Levels     LevelSet
	SearchTerm string
}

// Visible returns the subsequence of entries passing the filter, in order.
// An entry passes when its level is enabled and, if a search term is set,
// the term occurs case-insensitively in the message, the target, or any
// field value. An empty level set yields an empty result by policy.
func Visible(entries []Entry, state FilterState) []Entry {
	if len(state.Levels) == 0 {
		return []Entry{}
	}

	term := strings.ToLower(state.SearchTerm)

	out := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if !state.Levels.Has(entry.Level) {
			continue
		}

		if term != "" && !matches(entry, term) {
			continue
		}

		out = append(out, entry)
	}

	return out
}

// matches reports whether the lowercased term occurs in the entry
func matches(entry Entry, term string) bool {
	if strings.Contains(strings.ToLower(entry.Message), term) {
		return true
	}

	if strings.Contains(strings.ToLower(entry.Target), term) {
		return true
	}

	for _, field := range entry.Fields {
		if strings.Contains(strings.ToLower(field.Value), term) {
			return true
		}
	}

	return false
}
