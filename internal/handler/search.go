package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/railswift/railswift/internal/catalog"
	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/repository"
)

// SearchHandler serves train route search and the recent-search list.
type SearchHandler struct {
	Catalog  *catalog.Catalog
	Searches *repository.SearchRepo
}

func NewSearchHandler(cat *catalog.Catalog, s *repository.SearchRepo) *SearchHandler {
	return &SearchHandler{Catalog: cat, Searches: s}
}

// Trains answers GET /v1/trains?from=&to=. The response carries the
// matched trains plus a fallback flag telling the results screen whether
// it is looking at same-origin-any-destination results.
func (h *SearchHandler) Trains(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from required"})
	}
	return c.JSON(http.StatusOK, h.Catalog.SearchTrains(from, to))
}

// SaveSearch persists one submitted query into the capped recent list.
func (h *SearchHandler) SaveSearch(c echo.Context) error {
	var q model.SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Searches.Save(ctx, q); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save search failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Recent returns the saved queries, newest first.
func (h *SearchHandler) Recent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Searches.Recent(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load searches failed"})
	}
	if list == nil {
		list = []model.SearchQuery{}
	}
	return c.JSON(http.StatusOK, list)
}
