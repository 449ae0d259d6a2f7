package sentinel2

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
)

const testTileID = "S2A_OPER_MSI_L1C_TL_SGS__20190105T145859_A018533_T23KMQ_N02.07"

// gridXML renders a Zenith or Azimuth element for a 3x3 grid.
func gridXML(tag string, rows [3]string) string {
	return fmt.Sprintf(`<%[1]s>
  <COL_STEP unit="m">5000</COL_STEP>
  <ROW_STEP unit="m">5000</ROW_STEP>
  <Values_List>
    <VALUES>%[2]s</VALUES>
    <VALUES>%[3]s</VALUES>
    <VALUES>%[4]s</VALUES>
  </Values_List>
</%[1]s>`, tag, rows[0], rows[1], rows[2])
}

// testMetadataXML returns a small but structurally faithful MTD_TL.xml.
// Detector 1 covers the west half and detector 2 the east half of band 0.
func testMetadataXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<n1:Level-1C_Tile_ID xmlns:n1="https://psd-14.sentinel2.eo.esa.int/PSD/S2_PDI_Level-1C_Tile_Metadata.xsd">
<n1:General_Info>
  <TILE_ID metadataLevel="Brief">` + testTileID + `</TILE_ID>
  <SENSING_TIME metadataLevel="Standard">2019-01-05T13:22:31.024Z</SENSING_TIME>
</n1:General_Info>
<n1:Geometric_Info>
  <Tile_Geocoding metadataLevel="Brief">
    <HORIZONTAL_CS_NAME>WGS84 / UTM zone 23S</HORIZONTAL_CS_NAME>
    <HORIZONTAL_CS_CODE>EPSG:32723</HORIZONTAL_CS_CODE>
    <Size resolution="10"><NROWS>100</NROWS><NCOLS>100</NCOLS></Size>
    <Size resolution="20"><NROWS>50</NROWS><NCOLS>50</NCOLS></Size>
    <Size resolution="60"><NROWS>17</NROWS><NCOLS>17</NCOLS></Size>
    <Geoposition resolution="10"><ULX>499980</ULX><ULY>7900000</ULY><XDIM>10</XDIM><YDIM>-10</YDIM></Geoposition>
    <Geoposition resolution="20"><ULX>499980</ULX><ULY>7900000</ULY><XDIM>20</XDIM><YDIM>-20</YDIM></Geoposition>
    <Geoposition resolution="60"><ULX>499980</ULX><ULY>7900000</ULY><XDIM>60</XDIM><YDIM>-60</YDIM></Geoposition>
  </Tile_Geocoding>
  <Tile_Angles metadataLevel="Standard">
    <Sun_Angles_Grid>
` + gridXML("Zenith", [3]string{"30 31 32", "30 31 32", "30 31 32"}) + `
` + gridXML("Azimuth", [3]string{"100 100 100", "101 101 101", "102 102 102"}) + `
    </Sun_Angles_Grid>
    <Viewing_Incidence_Angles_Grids bandId="0" detectorId="1">
` + gridXML("Zenith", [3]string{"5 NaN NaN", "5 NaN NaN", "5 NaN NaN"}) + `
` + gridXML("Azimuth", [3]string{"350 NaN NaN", "350 NaN NaN", "350 NaN NaN"}) + `
    </Viewing_Incidence_Angles_Grids>
    <Viewing_Incidence_Angles_Grids bandId="0" detectorId="2">
` + gridXML("Zenith", [3]string{"NaN 7 9", "NaN 7 9", "NaN 7 9"}) + `
` + gridXML("Azimuth", [3]string{"NaN 10 10", "NaN 10 10", "NaN 10 10"}) + `
    </Viewing_Incidence_Angles_Grids>
  </Tile_Angles>
</n1:Geometric_Info>
</n1:Level-1C_Tile_ID>
`
}

// writeMetadata writes the test metadata to dir/name.
func writeMetadata(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testMetadataXML()), 0o600))
	return path
}

// writeSAFE builds product.SAFE/GRANULE/<granules...>/MTD_TL.xml under root.
func writeSAFE(t *testing.T, root string, granules ...string) string {
	t.Helper()
	safe := filepath.Join(root, "S2A_MSIL1C_20190105T132231_N0207_R038_T23KMQ_20190105T145859.SAFE")
	for _, g := range granules {
		writeMetadata(t, filepath.Join(safe, GranuleDir, g), MetadataFileName)
	}
	require.NoError(t, os.MkdirAll(safe, 0o755))
	return safe
}

// writeZip builds a zip archive with the given entries.
func writeZip(t *testing.T, path string, entries map[string]string) string {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

// recordingWriter implements driven.AngleRasterWriter, keeping rasters in memory.
type recordingWriter struct {
	mu      sync.Mutex
	rasters map[string]driven.AngleRaster
	err     error
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{rasters: make(map[string]driven.AngleRaster)}
}

func (w *recordingWriter) Write(path string, raster driven.AngleRaster) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.rasters[path] = raster
	return nil
}

func (w *recordingWriter) Extension() string {
	return ".tif"
}

func (w *recordingWriter) raster(t *testing.T, suffix string) driven.AngleRaster {
	t.Helper()
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, r := range w.rasters {
		if strings.HasSuffix(path, suffix) {
			return r
		}
	}
	t.Fatalf("no raster written with suffix %s", suffix)
	return nil
}
