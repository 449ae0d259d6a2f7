package driven

import (
	"context"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

// AngleBandGenerator produces solar and view angle bands from one kind of
// Sentinel-2 source. Each implementation owns its error taxonomy; callers
// must not rely on anything beyond the error value itself.
type AngleBandGenerator interface {
	// Generate writes the four angle bands for reference into outputDir.
	// An empty outputDir lets the generator choose a location.
	Generate(ctx context.Context, reference, outputDir string) (domain.AngleBandResult, error)
}
