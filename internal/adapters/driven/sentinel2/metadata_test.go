package sentinel2

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

func TestMetadataParser_Parse(t *testing.T) {
	meta, err := NewMetadataParser().Parse(strings.NewReader(testMetadataXML()))

	require.NoError(t, err)
	assert.Equal(t, testTileID, meta.TileID)
	assert.Equal(t, "EPSG:32723", meta.CRSCode)
	assert.Equal(t, "WGS84 / UTM zone 23S", meta.CRSName)
	assert.True(t, time.Date(2019, 1, 5, 13, 22, 31, 24_000_000, time.UTC).Equal(meta.SensingTime))

	require.Len(t, meta.Geocodings, 3)
	geo, ok := meta.Geocoding(20)
	require.True(t, ok)
	assert.Equal(t, domain.TileGeocoding{Resolution: 20, Rows: 50, Cols: 50}, geo)
	_, ok = meta.Geocoding(30)
	assert.False(t, ok)

	require.NotNil(t, meta.SunZenith)
	assert.Equal(t, 3, meta.SunZenith.Rows)
	assert.Equal(t, 3, meta.SunZenith.Cols)
	assert.Equal(t, 5000.0, meta.SunZenith.RowStep)
	assert.Equal(t, 32.0, meta.SunZenith.At(0, 2))
	assert.Equal(t, 102.0, meta.SunAzimuth.At(2, 0))

	require.Len(t, meta.Viewing, 2)
	assert.Equal(t, 0, meta.Viewing[1].BandID)
	assert.Equal(t, 2, meta.Viewing[1].DetectorID)
	assert.True(t, math.IsNaN(meta.Viewing[1].Zenith.At(0, 0)))
	assert.Equal(t, 9.0, meta.Viewing[1].Zenith.At(0, 2))
}

func TestMetadataParser_Parse_Malformed(t *testing.T) {
	valid := testMetadataXML()

	tests := []struct {
		name string
		doc  string
	}{
		{"not xml", "this is not xml"},
		{"truncated", valid[:len(valid)/2]},
		{"missing tile id", strings.Replace(valid, testTileID, "", 1)},
		{"bad sensing time", strings.Replace(valid, "2019-01-05T13:22:31.024Z", "yesterday", 1)},
		{"ragged grid", strings.Replace(valid, "30 31 32", "30 31", 1)},
		{"bad value", strings.Replace(valid, "30 31 32", "30 x 32", 1)},
		{"no viewing grids", stripViewing(valid)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMetadataParser().Parse(strings.NewReader(tt.doc))

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMetadataMalformed), "got %v", err)
		})
	}
}

func stripViewing(doc string) string {
	start := strings.Index(doc, "<Viewing_Incidence_Angles_Grids")
	end := strings.LastIndex(doc, "</Viewing_Incidence_Angles_Grids>") + len("</Viewing_Incidence_Angles_Grids>")
	return doc[:start] + doc[end:]
}
