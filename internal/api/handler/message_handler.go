package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenbridge/homecare-api/internal/api/metrics"
	"github.com/havenbridge/homecare-api/internal/api/middleware"
	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type messageResponse struct {
	Success bool                   `json:"success"`
	Message *domain.ContactMessage `json:"message"`
}

type messageListResponse struct {
	Success  bool                     `json:"success"`
	Messages []*domain.ContactMessage `json:"messages"`
}

// Create handles the public contact form.
//
// @Summary      Submit a contact message
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      200   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contact [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateMessageInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("message").Inc()
	return c.JSON(http.StatusOK, submissionResponse{
		Success: true,
		ID:      id,
		Message: "Message sent successfully",
	})
}

// List returns all contact messages, optionally filtered by status.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  messageListResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/admin/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	return c.JSON(http.StatusOK, messageListResponse{Success: true, Messages: messages})
}

// Get returns a single contact message.
//
// @Summary      Get a contact message
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	msg, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: msg})
}

// UpdateStatus sets a new inbox status on a message.
//
// @Summary      Update message status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Message id"
// @Param        body  body      statusUpdateRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/messages/{id}/status [put]
func (h *MessageHandler) UpdateStatus(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.service.UpdateStatus(c.Request().Context(), *principal, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(domain.EntityMessage, req.Status).Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: msg})
}

// Reply records an admin reply, marks the message REPLIED and emails the
// sender.
//
// @Summary      Reply to a contact message
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Message id"
// @Param        body  body      replyRequest  true  "Reply text"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.service.Reply(c.Request().Context(), *principal, c.Param("id"), req.Reply)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: msg})
}
