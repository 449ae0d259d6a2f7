package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnrecognizedSourceKind indicates a product reference has none of
	// the accepted suffixes.
	ErrUnrecognizedSourceKind = errors.New("unrecognised source kind")

	// ErrDirectoryPreparation indicates the output directory could not be created.
	ErrDirectoryPreparation = errors.New("output directory preparation failed")

	// ErrGeneratorUnavailable indicates no generator is wired for a source kind.
	ErrGeneratorUnavailable = errors.New("angle band generator unavailable")

	// ErrSettingsNotPersistent indicates settings have no backing file, so
	// changes would be lost when the process exits.
	ErrSettingsNotPersistent = errors.New("settings are not persistent")

	// Product Errors.

	// ErrMetadataNotFound indicates the product holds no tile metadata file.
	ErrMetadataNotFound = errors.New("tile metadata not found")

	// ErrMetadataMalformed indicates the tile metadata could not be interpreted.
	ErrMetadataMalformed = errors.New("tile metadata malformed")

	// ErrArchiveCorrupt indicates a zipped product could not be read.
	ErrArchiveCorrupt = errors.New("archive corrupt")
)

// UnrecognizedSourceKindError is returned by ClassifySource when a reference
// matches none of the accepted suffixes.
type UnrecognizedSourceKindError struct {
	Reference string
}

func (e *UnrecognizedSourceKindError) Error() string {
	return fmt.Sprintf("can't infer Sentinel-2 path type of %q (expecting '%s', '%s' or '%s' extension)",
		e.Reference, SuffixSAFE, SuffixXML, SuffixZIP)
}

// Is matches ErrUnrecognizedSourceKind.
func (e *UnrecognizedSourceKindError) Is(target error) bool {
	return target == ErrUnrecognizedSourceKind
}

// DirectoryPreparationError carries the directory that could not be created
// and the filesystem error behind it.
type DirectoryPreparationError struct {
	Path  string
	Cause error
}

func (e *DirectoryPreparationError) Error() string {
	return fmt.Sprintf("prepare output directory %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error.
func (e *DirectoryPreparationError) Unwrap() error {
	return e.Cause
}

// Is matches ErrDirectoryPreparation.
func (e *DirectoryPreparationError) Is(target error) bool {
	return target == ErrDirectoryPreparation
}
