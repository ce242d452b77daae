package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studyhub/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string              `json:"message"`
	Created *service.SeedResult `json:"created"`
}

// SeedDemo godoc
// @Summary Load demo data for the signed-in user
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 201 {object} SeedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [post]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	res, err := h.seedService.SeedDemo(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, SeedResponse{
		Message: "Demo data seeded successfully",
		Created: res,
	})
}
