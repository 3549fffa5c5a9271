package abbrev

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	clierrors "github.com/momorph/shortpwd/internal/errors"
)

// Path is an absolute path split into components. The first component is the
// filesystem root ("/" or a volume root such as `C:\`).
type Path []string

// Split cleans p and splits it into components.
func Split(p string) (Path, error) {
	if p == "" {
		return nil, clierrors.ErrEmptyPath
	}
	if !filepath.IsAbs(p) {
		return nil, clierrors.Wrapf(clierrors.ErrNotAbsolute, "%q", p)
	}

	p = filepath.Clean(p)
	vol := filepath.VolumeName(p)
	out := Path{vol + string(filepath.Separator)}
	for _, c := range strings.Split(p[len(vol):], string(filepath.Separator)) {
		if c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

// String joins the components with the platform separator. Components are
// kept as they are: a shortened ".." must not swallow its parent.
func (p Path) String() string {
	sep := string(filepath.Separator)
	var sb strings.Builder
	for i, c := range p {
		if i > 0 && !strings.HasSuffix(p[i-1], sep) {
			sb.WriteString(sep)
		}
		sb.WriteString(c)
	}
	return sb.String()
}

// Len returns the length of String in runes.
func (p Path) Len() int {
	return utf8.RuneCountInString(p.String())
}

// Last returns the final component, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// HasPrefix reports whether p starts with all components of prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) == 0 || len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (p Path) validate() error {
	if len(p) == 0 {
		return clierrors.ErrEmptyPath
	}
	for _, c := range p {
		if !utf8.ValidString(c) {
			return clierrors.Wrapf(clierrors.ErrInvalidEncoding, "%q", c)
		}
	}
	return nil
}
