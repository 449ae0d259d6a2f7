// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AngleBandGenerator: Produces the four angle bands for one source kind
//   - DirectoryPreparer: Creates output directories
//   - ConfigStore: Application configuration
//
// # Generator Building Blocks
//
// Used by the bundled Sentinel-2 generators, not by core services:
//
//   - TileMetadataParser: Reads MTD_TL.xml into domain.TileMetadata
//   - AngleRasterWriter: Writes a resampled angle raster to disk
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
