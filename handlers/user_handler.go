package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shibinnakam/smart-attendance/apperrors"
	"github.com/shibinnakam/smart-attendance/directory"
	"github.com/shibinnakam/smart-attendance/models"
)

type UserHandler struct {
	dir *directory.Directory
}

func NewUserHandler(dir *directory.Directory) *UserHandler {
	return &UserHandler{dir: dir}
}

// POST /users  body: { "name": "Asha", "identifier": "ab12" }
func (h *UserHandler) Register(c echo.Context) error {
	var req struct {
		Name       string `json:"name"`
		Identifier string `json:"identifier"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	u, err := h.dir.Register(req.Name, req.Identifier)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, u)
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidIdentifier):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "message": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateIdentifier):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "DUPLICATE_IDENTIFIER"})
	default:
		log.Printf("[users] register: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
}

// GET /users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.dir.List()
	if err != nil {
		log.Printf("[users] list: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(http.StatusOK, users)
}
