// Package sentinel2 generates solar and view angle bands from Sentinel-2
// Level-1C and Level-2A products.
//
// Three generators cover the supported source kinds:
//
//   - XMLGenerator reads a tile metadata file (MTD_TL.xml) directly
//   - SAFEGenerator locates GRANULE/*/MTD_TL.xml inside a .SAFE folder
//   - ZIPGenerator extracts the tile metadata from a zipped .SAFE product
//
// The SAFE and ZIP generators delegate to an XML generator once the metadata
// file is on disk. Angle grids in the metadata are sampled every 5000 m; the
// XML generator fills gaps and interpolates them onto the tile raster.
package sentinel2
