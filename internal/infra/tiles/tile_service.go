// Package tiles serves basemap tiles for the near-me map from a PMTiles archive.
package tiles

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"detailers/config"
	"detailers/internal/usecase"

	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

// tileCacheSize is the number of decoded directory entries held in memory.
const tileCacheSize = 64

// pmtilesTileService implements TileUsecase on top of a PMTiles archive.
// The archive may live on local disk, HTTP or cloud storage; the pmtiles
// server handles range reads against all of them.
type pmtilesTileService struct {
	source      string
	tilesetName string
	logger      *slog.Logger
	server      *pmtiles.Server
}

// TileServiceParams holds dependencies for the tile service
type TileServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTileService creates a tile service from the configured PMTiles source.
// When tiles are disabled the service answers 404 for every request so the
// frontend can fall back to a hosted basemap.
func NewTileService(params TileServiceParams) (usecase.TileUsecase, error) {
	cfg := params.Config.Tiles
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Tile serving disabled")

		return &disabledTileService{}, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("tiles source is required when enabled")
	}

	bucketPath, tilesetName := parseSourcePath(cfg.Source)

	// pmtiles requires a *log.Logger; keep it quiet and log ourselves.
	silentLogger := log.New(io.Discard, "", 0)

	server, err := pmtiles.NewServer(bucketPath, "", silentLogger, tileCacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}

	server.Start()

	logger.Info("Tile service initialized",
		slog.String("source", cfg.Source),
		slog.String("tileset", tilesetName),
	)

	return &pmtilesTileService{
		source:      cfg.Source,
		tilesetName: tilesetName,
		logger:      logger,
		server:      server,
	}, nil
}

// GetTile serves one tile request through the PMTiles server. The server
// hands back plain string maps; convert them so callers get canonical
// http.Header semantics.
func (s *pmtilesTileService) GetTile(ctx context.Context, path string) (int, http.Header, []byte) {
	statusCode, headers, data := s.server.Get(ctx, path)

	return statusCode, headerFromMap(headers), data
}

// headerFromMap canonicalizes the pmtiles server's plain header map.
func headerFromMap(headers map[string]string) http.Header {
	header := make(http.Header, len(headers))
	for key, value := range headers {
		header.Set(key, value)
	}

	return header
}

// IsReady returns whether the tile source is loaded.
func (s *pmtilesTileService) IsReady() bool {
	return s.server != nil
}

// TilesetName returns the tileset derived from the source filename.
func (s *pmtilesTileService) TilesetName() string {
	return s.tilesetName
}

// parseSourcePath extracts the bucket directory and tileset name from a source path.
// Examples:
//   - "file:///path/to/basemap.pmtiles" -> ("file:///path/to", "basemap")
//   - "/path/to/basemap.pmtiles" -> ("file:///path/to", "basemap")
//   - "https://example.com/tiles/basemap.pmtiles" -> ("https://example.com/tiles", "basemap")
func parseSourcePath(source string) (bucketPath, tilesetName string) {
	// Handle file:// prefix
	if strings.HasPrefix(source, "file://") {
		path := strings.TrimPrefix(source, "file://")
		dir := filepath.Dir(path)
		filename := filepath.Base(path)
		tilesetName = strings.TrimSuffix(filename, ".pmtiles")

		return "file://" + dir, tilesetName
	}

	// Handle HTTP/HTTPS URLs
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")
		if lastSlash > 0 {
			bucketPath = source[:lastSlash]
			filename := source[lastSlash+1:]
			tilesetName = strings.TrimSuffix(filename, ".pmtiles")

			return bucketPath, tilesetName
		}
	}

	// Handle local file path without prefix
	dir := filepath.Dir(source)
	filename := filepath.Base(source)
	tilesetName = strings.TrimSuffix(filename, ".pmtiles")

	return "file://" + dir, tilesetName
}

// disabledTileService answers 404 for every tile when serving is turned off.
type disabledTileService struct{}

func (s *disabledTileService) GetTile(ctx context.Context, path string) (int, http.Header, []byte) {
	return http.StatusNotFound, http.Header{}, nil
}

func (s *disabledTileService) IsReady() bool {
	return false
}
