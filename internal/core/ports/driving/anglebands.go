package driving

import (
	"context"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

// AngleBandService turns a Sentinel-2 product reference into angle bands.
type AngleBandService interface {
	// Classify resolves the source kind of reference without side effects.
	Classify(reference string) (domain.SourceKind, error)

	// Generate classifies reference, prepares outputDir when it is not empty,
	// and runs the generator bound to the resolved kind.
	Generate(ctx context.Context, reference, outputDir string) (domain.AngleBandResult, error)
}
