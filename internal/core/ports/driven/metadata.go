package driven

import (
	"io"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

// TileMetadataParser decodes Sentinel-2 tile metadata.
type TileMetadataParser interface {
	// Parse reads an MTD_TL.xml document.
	// Returns an error wrapping domain.ErrMetadataMalformed if the document
	// cannot be interpreted.
	Parse(r io.Reader) (*domain.TileMetadata, error)
}
