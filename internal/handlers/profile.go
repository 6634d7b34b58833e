package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/shipra/internal/store"
)

// ProfileHandler serves user profile lookups.
type ProfileHandler struct {
	st *store.Store
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{st: st}
}

// GetUserProfile returns the user identified by the userId query parameter.
func (h *ProfileHandler) GetUserProfile(c *fiber.Ctx) error {
	rawUserID := c.Query("userId")
	if rawUserID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "User ID required")
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	user, err := h.st.Users.FindByID(c.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	} else if err != nil {
		return err
	}

	return c.JSON(user)
}
