package handler

import (
	"log/slog"
	"net/http"

	"detailers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	TileUC usecase.TileUsecase `optional:"true"`
	Logger *slog.Logger
}

// TileHandler serves basemap tiles for the near-me map.
type TileHandler struct {
	tileUC usecase.TileUsecase
	logger *slog.Logger
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{
		tileUC: params.TileUC,
		logger: params.Logger,
	}
}

// GetTile handles one /{tileset}/{z}/{x}/{y}.{ext} tile request
func (h *TileHandler) GetTile(c echo.Context) error {
	if h.tileUC == nil || !h.tileUC.IsReady() {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	status, headers, body := h.tileUC.GetTile(c.Request().Context(), c.Param("*"))

	for key, values := range headers {
		if key == echo.HeaderContentType {
			continue
		}
		for _, value := range values {
			c.Response().Header().Add(key, value)
		}
	}

	contentType := headers.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Blob(status, contentType, body)
}
