package domain

import "strings"

const unknownDescription = "Unknown"

// SourceKind identifies how a Sentinel-2 product reference is packaged.
type SourceKind string

// Supported source kinds.
const (
	// SourceKindXMLMetadata is a tile metadata file (MTD_TL.xml).
	SourceKindXMLMetadata SourceKind = "xml"

	// SourceKindSAFEDirectory is an unpacked .SAFE product folder.
	SourceKindSAFEDirectory SourceKind = "safe"

	// SourceKindZippedSAFE is a .SAFE product folder inside a zip archive.
	SourceKindZippedSAFE SourceKind = "zip"
)

// Suffixes matched by ClassifySource, compared without regard to case.
const (
	SuffixXML  = ".xml"
	SuffixSAFE = ".SAFE"
	SuffixZIP  = ".zip"
)

// sourceSuffixes is checked in order; the first match wins.
var sourceSuffixes = []struct {
	suffix string
	kind   SourceKind
}{
	{SuffixXML, SourceKindXMLMetadata},
	{SuffixSAFE, SourceKindSAFEDirectory},
	{SuffixZIP, SourceKindZippedSAFE},
}

// ClassifySource resolves the kind of a product reference from its suffix.
// XML takes precedence over SAFE, which takes precedence over ZIP.
func ClassifySource(reference string) (SourceKind, error) {
	lower := strings.ToLower(reference)
	for _, s := range sourceSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(s.suffix)) {
			return s.kind, nil
		}
	}
	return "", &UnrecognizedSourceKindError{Reference: reference}
}

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindXMLMetadata, SourceKindSAFEDirectory, SourceKindZippedSAFE:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindXMLMetadata:
		return "Tile metadata file (MTD_TL.xml)"
	case SourceKindSAFEDirectory:
		return "SAFE product folder"
	case SourceKindZippedSAFE:
		return "Zipped SAFE product"
	default:
		return unknownDescription
	}
}
