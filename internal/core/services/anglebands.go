package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
	"github.com/custodia-labs/s2angs/internal/core/ports/driving"
	"github.com/custodia-labs/s2angs/internal/logger"
)

// Ensure AngleBandService implements the interface.
var _ driving.AngleBandService = (*AngleBandService)(nil)

// Generators binds one generator to each source kind.
type Generators struct {
	XML  driven.AngleBandGenerator
	SAFE driven.AngleBandGenerator
	ZIP  driven.AngleBandGenerator
}

// AngleBandService classifies product references and dispatches them
// to the matching generator.
type AngleBandService struct {
	generators Generators
	dirs       driven.DirectoryPreparer
}

// NewAngleBandService creates a new angle band service.
func NewAngleBandService(generators Generators, dirs driven.DirectoryPreparer) *AngleBandService {
	return &AngleBandService{
		generators: generators,
		dirs:       dirs,
	}
}

// Classify resolves the source kind of reference.
func (s *AngleBandService) Classify(reference string) (domain.SourceKind, error) {
	return domain.ClassifySource(reference)
}

// Generate classifies reference, ensures outputDir exists when given,
// and returns whatever the selected generator returns.
func (s *AngleBandService) Generate(
	ctx context.Context,
	reference, outputDir string,
) (domain.AngleBandResult, error) {
	kind, err := domain.ClassifySource(reference)
	if err != nil {
		return domain.AngleBandResult{}, err
	}
	logger.Debug("classified %s as %s", reference, kind)

	generator := s.generatorFor(kind)
	if generator == nil {
		return domain.AngleBandResult{}, fmt.Errorf("%w: %s", domain.ErrGeneratorUnavailable, kind)
	}

	if outputDir != "" {
		if err := s.dirs.Ensure(outputDir); err != nil {
			return domain.AngleBandResult{}, &domain.DirectoryPreparationError{Path: outputDir, Cause: err}
		}
	}

	return generator.Generate(ctx, reference, outputDir)
}

func (s *AngleBandService) generatorFor(kind domain.SourceKind) driven.AngleBandGenerator {
	switch kind {
	case domain.SourceKindXMLMetadata:
		return s.generators.XML
	case domain.SourceKindSAFEDirectory:
		return s.generators.SAFE
	case domain.SourceKindZippedSAFE:
		return s.generators.ZIP
	default:
		return nil
	}
}
