// Package anchor holds the set of entry names that mark a directory as a
// project or repository root, and a prober that checks directories for them.
package anchor

import "sort"

// defaultNames are the markers recognised out of the box.
var defaultNames = []string{
	// version control
	".git",
	".bzr",
	".citc",
	".hg",
	".svn",
	"CVS",

	// language version pins
	".node-version",
	".python-version",
	".go-version",
	".ruby-version",
	".lua-version",
	".java-version",
	".perl-version",
	".php-version",
	".tool-versions",

	// manifests and lockfiles
	"Cargo.toml",
	"composer.json",
	"go.mod",
	"go.work",
	"package.json",
	"package-lock.json",
	"yarn.lock",
	"stack.yaml",
	"requirements.txt",
	"__main__.py",
	"init.lua",

	// explicit opt-in for directories that have none of the above
	".shorten_folder_marker",
}

// Catalog is an immutable set of anchor names. Membership is exact and
// case-sensitive.
type Catalog struct {
	names map[string]struct{}
}

// Default returns a catalog with the built-in markers.
func Default() *Catalog {
	return New(defaultNames...)
}

// New returns a catalog containing names. Empty names are ignored.
func New(names ...string) *Catalog {
	c := &Catalog{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n != "" {
			c.names[n] = struct{}{}
		}
	}
	return c
}

// With returns a new catalog holding the receiver's names plus extra.
func (c *Catalog) With(extra ...string) *Catalog {
	return New(append(c.Names(), extra...)...)
}

// Contains reports whether name is an anchor.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

// Matches reports whether any of entries is an anchor.
func (c *Catalog) Matches(entries []string) bool {
	for _, e := range entries {
		if c.Contains(e) {
			return true
		}
	}
	return false
}

// Names returns the anchor names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.names))
	for n := range c.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of anchor names.
func (c *Catalog) Len() int {
	return len(c.names)
}
