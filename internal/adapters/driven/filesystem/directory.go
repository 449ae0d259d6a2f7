// Package filesystem provides local filesystem implementations of driven ports.
package filesystem

import (
	"os"

	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
)

// Ensure DirectoryPreparer implements the interface.
var _ driven.DirectoryPreparer = (*DirectoryPreparer)(nil)

// defaultDirMode is applied to every directory created, before umask.
const defaultDirMode os.FileMode = 0o755

// DirectoryPreparer creates directories on the local filesystem.
type DirectoryPreparer struct {
	mode os.FileMode
}

// NewDirectoryPreparer creates a preparer using mode 0755.
func NewDirectoryPreparer() *DirectoryPreparer {
	return &DirectoryPreparer{mode: defaultDirMode}
}

// Ensure creates path and its parents. Existing directories are left alone;
// an existing non-directory at path is an error.
func (p *DirectoryPreparer) Ensure(path string) error {
	return os.MkdirAll(path, p.mode)
}
