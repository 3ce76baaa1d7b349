package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

// ReferenceHandler serves public, read-only data: the banner, the city and
// category catalogs and platform counters.
type ReferenceHandler struct {
	catalog *domain.Catalog
	stats   ports.StatsService
}

func NewReferenceHandler(catalog *domain.Catalog, stats ports.StatsService) *ReferenceHandler {
	return &ReferenceHandler{catalog: catalog, stats: stats}
}

// Root handles GET /.
//
// @Summary      Service banner
// @Tags         reference
// @Produce      json
// @Success      200  {object}  bannerResponse
// @Router       / [get]
func (h *ReferenceHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, bannerResponse{Message: "YAPARIM - Turkish Task Marketplace API"})
}

// Cities handles GET /api/cities.
//
// @Summary      Supported cities
// @Tags         reference
// @Produce      json
// @Success      200  {object}  citiesResponse
// @Router       /api/cities [get]
func (h *ReferenceHandler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, citiesResponse{Cities: h.catalog.Cities()})
}

// Categories handles GET /api/categories.
//
// @Summary      Supported task categories
// @Tags         reference
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/categories [get]
func (h *ReferenceHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Categories: h.catalog.Categories()})
}

// Stats handles GET /api/stats.
//
// @Summary      Platform counters
// @Tags         reference
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Failure      500  {object}  errorResponse
// @Router       /api/stats [get]
func (h *ReferenceHandler) Stats(c echo.Context) error {
	s, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}
