package driven

// DirectoryPreparer creates output directories.
type DirectoryPreparer interface {
	// Ensure creates path and any missing parents.
	// A directory that already exists is not an error.
	Ensure(path string) error
}
