// Package domain defines the core business entities for s2angs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceKind: How a Sentinel-2 product reference is laid out on disk
//   - AngleBandResult: The four angle band files produced for a product
//   - AngleGrid: A coarse angle grid read from tile metadata
//   - TileMetadata: The parts of MTD_TL.xml needed to build angle bands
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
