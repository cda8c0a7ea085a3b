package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/railswift/railswift/internal/catalog"
)

// CatalogHandler exposes the static lookup tables: city suggestions, the
// food menu and the offer banners. All of it is public and cacheable.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// Cities answers GET /v1/cities?q= with up to six suggestions.
func (h *CatalogHandler) Cities(c echo.Context) error {
	out := h.Catalog.SearchCities(c.QueryParam("q"))
	if out == nil {
		out = []string{}
	}
	return c.JSON(http.StatusOK, out)
}

// Food answers GET /v1/food?q=&category= with the filtered menu.
func (h *CatalogHandler) Food(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.FilterFood(c.QueryParam("q"), c.QueryParam("category")))
}

// Offers answers GET /v1/offers with the promotional banners.
func (h *CatalogHandler) Offers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Offers)
}
