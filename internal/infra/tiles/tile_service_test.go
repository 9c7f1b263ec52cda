package tiles

import (
	"context"
	"net/http"
	"testing"

	"detailers/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantBucket string
		wantName   string
	}{
		{
			name:       "file URL",
			source:     "file:///var/tiles/basemap.pmtiles",
			wantBucket: "file:///var/tiles",
			wantName:   "basemap",
		},
		{
			name:       "bare local path",
			source:     "/var/tiles/basemap.pmtiles",
			wantBucket: "file:///var/tiles",
			wantName:   "basemap",
		},
		{
			name:       "https URL",
			source:     "https://example.com/tiles/basemap.pmtiles",
			wantBucket: "https://example.com/tiles",
			wantName:   "basemap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, name := parseSourcePath(tt.source)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestNewTileService_Disabled(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewTileService(TileServiceParams{
		Config: cfg,
		Logger: testLogger(),
	})
	require.NoError(t, err)
	assert.False(t, svc.IsReady())

	status, _, body := svc.GetTile(context.Background(), "/basemap/0/0/0.mvt")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Nil(t, body)
}

func TestNewTileService_EnabledWithoutSource(t *testing.T) {
	cfg := &config.Config{
		Tiles: &config.TilesConfig{Enabled: true},
	}

	_, err := NewTileService(TileServiceParams{
		Config: cfg,
		Logger: testLogger(),
	})
	assert.Error(t, err)
}

func TestHeaderFromMap_Canonicalizes(t *testing.T) {
	header := headerFromMap(map[string]string{
		"content-type":  "application/x-protobuf",
		"Cache-Control": "public, max-age=86400",
	})

	assert.Equal(t, "application/x-protobuf", header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", header.Get("Cache-Control"))
	assert.Len(t, header, 2)
}
