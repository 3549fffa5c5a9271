// Package abbrev shortens absolute paths for display in a shell prompt.
//
// Components are reduced to their first character, left to right, skipping
// directories that hold an anchor entry (a VCS directory, a manifest, ...).
// The last component is never shortened.
package abbrev

import (
	clierrors "github.com/momorph/shortpwd/internal/errors"
	"github.com/momorph/shortpwd/internal/logger"
)

// DefaultHomePrefix is the number of leading components of a conventional
// home directory: root, "home", user name.
const DefaultHomePrefix = 3

// Probe reports whether a directory is a project root.
type Probe interface {
	HasAnchor(dir string) (bool, error)
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func(dir string) (bool, error)

// HasAnchor calls f(dir).
func (f ProbeFunc) HasAnchor(dir string) (bool, error) {
	return f(dir)
}

// Options control a single Abbreviate call.
type Options struct {
	// AnchoredToHome keeps the home-directory prefix verbatim.
	AnchoredToHome bool
	// StopEarly returns as soon as the result fits the budget.
	StopEarly bool
	// HomePrefix is the number of components kept when AnchoredToHome is
	// set. Zero means DefaultHomePrefix.
	HomePrefix int
}

func (o Options) start() int {
	if !o.AnchoredToHome {
		return 0
	}
	if o.HomePrefix > 0 {
		return o.HomePrefix
	}
	return DefaultHomePrefix
}

// Abbreviate shortens path until its rendering is at most budget runes long,
// or until every eligible component has been shortened.
//
// While stopping early, candidates are measured without the preserved home
// prefix, which is displayed as "~". The last component is only appended when
// at least one component was considered; otherwise the result is empty. Any
// probe failure aborts the call.
func Abbreviate(path Path, budget int, opts Options, probe Probe) (Path, error) {
	if err := path.validate(); err != nil {
		return nil, err
	}
	if budget < 0 {
		budget = 0
	}

	if opts.StopEarly && path.Len() <= budget {
		return path, nil
	}

	start := opts.start()
	last := len(path) - 1
	if last <= start {
		return Path{}, nil
	}

	out := make(Path, 0, len(path))
	out = append(out, path[:start]...)

	for i := start; i < last; i++ {
		dir := path[:i+1].String()
		anchored, err := probe.HasAnchor(dir)
		if err != nil {
			return nil, clierrors.Wrap(err, "probing for anchors")
		}

		switch {
		case anchored:
			logger.Debug("anchor in %s, keeping %q", dir, path[i])
			out = append(out, path[i])
		case i == 0:
			// the root has nothing to shorten
			out = append(out, path[i])
		default:
			out = append(out, Shorten(path[i]))
		}

		if opts.StopEarly {
			candidate := append(append(Path{}, out...), path[i+1:]...)
			if candidate[start:].Len() <= budget {
				return candidate, nil
			}
		}
	}

	return append(out, path[last]), nil
}

// Shorten reduces a component to its first rune, or its first two runes when
// it starts with a dot.
func Shorten(component string) string {
	n := 1
	if len(component) > 0 && component[0] == '.' {
		n = 2
	}
	for i := range component {
		if n == 0 {
			return component[:i]
		}
		n--
	}
	return component
}
