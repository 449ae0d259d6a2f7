package sentinel2

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
	"github.com/custodia-labs/s2angs/internal/logger"
)

// Ensure SAFEGenerator implements the interface.
var _ driven.AngleBandGenerator = (*SAFEGenerator)(nil)

// GranuleDir is the SAFE folder holding one subfolder per tile.
const GranuleDir = "GRANULE"

// SAFEGenerator builds angle bands from an unpacked .SAFE product.
type SAFEGenerator struct {
	xml driven.AngleBandGenerator
}

// NewSAFEGenerator creates a generator that hands the product's tile
// metadata to xml.
func NewSAFEGenerator(xml driven.AngleBandGenerator) *SAFEGenerator {
	return &SAFEGenerator{xml: xml}
}

// Generate locates GRANULE/*/MTD_TL.xml under reference and delegates.
// With no outputDir, files land in the granule folder.
func (g *SAFEGenerator) Generate(ctx context.Context, reference, outputDir string) (domain.AngleBandResult, error) {
	metadataPath, err := FindGranuleMetadata(reference)
	if err != nil {
		return domain.AngleBandResult{}, err
	}
	logger.Debug("using tile metadata %s", metadataPath)

	return g.xml.Generate(ctx, metadataPath, outputDir)
}

// FindGranuleMetadata returns the tile metadata path inside a SAFE folder.
// Old multi-tile products hold several granules; the first in lexical
// order is used.
func FindGranuleMetadata(safeDir string) (string, error) {
	info, err := os.Stat(safeDir)
	if err != nil {
		return "", fmt.Errorf("open SAFE product: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", domain.ErrMetadataNotFound, safeDir)
	}

	matches, err := filepath.Glob(filepath.Join(safeDir, GranuleDir, "*", MetadataFileName))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no %s/*/%s in %s", domain.ErrMetadataNotFound, GranuleDir, MetadataFileName, safeDir)
	}

	sort.Strings(matches)
	if len(matches) > 1 {
		logger.Warn("%s holds %d granules, using %s", safeDir, len(matches), matches[0])
	}
	return matches[0], nil
}
