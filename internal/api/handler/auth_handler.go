package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenbridge/homecare-api/internal/api/metrics"
	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// AuthHandler handles admin login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type adminProfile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Admin   adminProfile `json:"admin"`
}

// Login authenticates an admin and returns a signed token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AdminLoginsTotal.WithLabelValues("denied").Inc()
		}
		return err
	}

	metrics.AdminLoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Admin: adminProfile{
			ID:       admin.ID,
			FullName: admin.FullName,
			Email:    admin.Email,
			Role:     admin.Role,
		},
	})
}
