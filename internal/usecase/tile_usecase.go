package usecase

import (
	"context"
	"net/http"
)

// TileUsecase defines the interface for serving basemap tiles to the
// near-me map. Paths follow the /{tileset}/{z}/{x}/{y}.{ext} convention.
type TileUsecase interface {
	// GetTile serves one tile request. The return values mirror an HTTP
	// response: status code, headers and body.
	GetTile(ctx context.Context, path string) (int, http.Header, []byte)

	// IsReady returns whether the tile source is loaded and ready.
	IsReady() bool
}
