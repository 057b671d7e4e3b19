package telemetry

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
)

// Matcher checks log targets against configured ignore patterns. Targets
// are hierarchical, '::'-separated namespaces; ':' is the glob separator
// so `proxy::*` matches one level and `proxy::**` a whole subtree.
type Matcher interface {
	Ignored(target string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	ignores []glob.Glob
}

// NewMatcher creates a Matcher from ignore patterns
func NewMatcher(ignores []string) (Matcher, error) {
	m := &matcher{
		ignores: make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range ignores {
		g, err := glob.Compile(p, ':')
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrInvalidIgnorePattern, p)
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// Ignored returns true if the target matches any ignore pattern
func (m *matcher) Ignored(target string) bool {
	for _, ignore := range m.ignores {
		if ignore.Match(target) {
			return true
		}
	}

	return false
}
