package sentinel2

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
	"github.com/custodia-labs/s2angs/internal/logger"
)

// Ensure ZIPGenerator implements the interface.
var _ driven.AngleBandGenerator = (*ZIPGenerator)(nil)

// ZIPGenerator builds angle bands from a zipped .SAFE product.
// Only the tile metadata is extracted.
type ZIPGenerator struct {
	xml     driven.AngleBandGenerator
	workDir string
}

// NewZIPGenerator creates a generator that extracts into workDir and hands
// the metadata to xml. An empty workDir uses the system temp directory.
func NewZIPGenerator(xml driven.AngleBandGenerator, workDir string) *ZIPGenerator {
	return &ZIPGenerator{xml: xml, workDir: workDir}
}

// Generate extracts the tile metadata from the archive at reference and
// delegates. With no outputDir, files are written next to the archive.
// The extracted metadata is removed afterwards.
func (g *ZIPGenerator) Generate(ctx context.Context, reference, outputDir string) (domain.AngleBandResult, error) {
	archive, err := zip.OpenReader(reference)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.AngleBandResult{}, fmt.Errorf("open zipped product: %w", err)
		}
		return domain.AngleBandResult{}, fmt.Errorf("%w: %s: %v", domain.ErrArchiveCorrupt, reference, err)
	}
	defer archive.Close()

	entry, err := findGranuleEntry(archive.File)
	if err != nil {
		return domain.AngleBandResult{}, fmt.Errorf("%s: %w", reference, err)
	}

	workDir := g.workDir
	if workDir == "" {
		workDir = os.TempDir()
	}
	extractDir := filepath.Join(workDir, "s2angs-"+uuid.NewString())
	if err := os.MkdirAll(extractDir, 0o700); err != nil {
		return domain.AngleBandResult{}, fmt.Errorf("create extraction directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(extractDir); err != nil {
			logger.Warn("failed to remove %s: %v", extractDir, err)
		}
	}()

	metadataPath := filepath.Join(extractDir, MetadataFileName)
	if err := extractEntry(entry, metadataPath); err != nil {
		return domain.AngleBandResult{}, fmt.Errorf("%s: %w", reference, err)
	}
	logger.Debug("extracted %s to %s", entry.Name, metadataPath)

	if outputDir == "" {
		outputDir = filepath.Dir(reference)
	}
	return g.xml.Generate(ctx, metadataPath, outputDir)
}

// findGranuleEntry picks the archive member matching GRANULE/*/MTD_TL.xml,
// at any depth below the product root.
func findGranuleEntry(files []*zip.File) (*zip.File, error) {
	var matches []*zip.File
	for _, f := range files {
		parts := strings.Split(strings.TrimSuffix(f.Name, "/"), "/")
		n := len(parts)
		if n >= 3 && parts[n-1] == MetadataFileName && parts[n-3] == GranuleDir {
			matches = append(matches, f)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no %s/*/%s entry", domain.ErrMetadataNotFound, GranuleDir, MetadataFileName)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	if len(matches) > 1 {
		logger.Warn("archive holds %d granules, using %s", len(matches), matches[0].Name)
	}
	return matches[0], nil
}

func extractEntry(entry *zip.File, dst string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrArchiveCorrupt, entry.Name, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: read %s: %v", domain.ErrArchiveCorrupt, entry.Name, err)
	}
	return out.Close()
}
