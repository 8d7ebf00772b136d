package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/danielgpm/linkedin-cv/api/http/presenter"
	"github.com/danielgpm/linkedin-cv/pkg/cvstore"
)

// CVHandler serves previously extracted CVs back to the client.
type CVHandler struct {
	store cvstore.Service
}

func NewCVHandler(store cvstore.Service) *CVHandler { return &CVHandler{store: store} }

// Latest returns the most recent CV extracted for the calling client.
// Stored data that no longer validates against the schema is treated as absent.
// @Summary Latest extracted CV
// @Tags    cv
// @Produce json
// @Success 200 {object} cvstore.Entry
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /cv/latest [get]
func (h *CVHandler) Latest(c *fiber.Ctx) error {
	entry, err := h.store.Latest(c.Context(), clientIP(c))
	if errors.Is(err, cvstore.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "no stored cv")
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load cv")
	}
	return presenter.JSON(c, http.StatusOK, entry)
}

// History lists recent extractions for the calling client, newest first.
// @Summary Extraction history
// @Tags    cv
// @Produce json
// @Param   limit  query int false "page size (default 20, max 200)"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /cv/history [get]
func (h *CVHandler) History(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)
	entries, err := h.store.History(c.Context(), clientIP(c), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list cvs")
	}
	if entries == nil {
		entries = []cvstore.Entry{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  entries,
		"limit":  limit,
		"offset": offset,
	})
}
