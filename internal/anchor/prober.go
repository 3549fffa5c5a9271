package anchor

import (
	"fmt"

	clierrors "github.com/momorph/shortpwd/internal/errors"
	"github.com/spf13/afero"
)

// Prober checks directories on a filesystem for anchor entries.
type Prober struct {
	fs      afero.Fs
	catalog *Catalog
}

// NewProber returns a Prober reading through fs. A nil fs means the OS
// filesystem.
func NewProber(fs afero.Fs, catalog *Catalog) *Prober {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Prober{fs: fs, catalog: catalog}
}

// HasAnchor lists dir and reports whether it contains an anchor entry.
// A directory that cannot be listed is an error, never "no anchor".
func (p *Prober) HasAnchor(dir string) (bool, error) {
	f, err := p.fs.Open(dir)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", clierrors.ErrListDir, dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", clierrors.ErrListDir, dir, err)
	}
	return p.catalog.Matches(names), nil
}
