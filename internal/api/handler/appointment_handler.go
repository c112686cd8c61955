package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenbridge/homecare-api/internal/api/metrics"
	"github.com/havenbridge/homecare-api/internal/api/middleware"
	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// AppointmentHandler handles the public appointment submission and the admin
// appointment lifecycle.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type appointmentResponse struct {
	Success     bool                `json:"success"`
	Appointment *domain.Appointment `json:"appointment"`
}

type appointmentListResponse struct {
	Success      bool                  `json:"success"`
	Appointments []*domain.Appointment `json:"appointments"`
}

// Create handles the public appointment request form.
//
// @Summary      Submit an appointment request
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      200   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("appointment").Inc()
	return c.JSON(http.StatusOK, submissionResponse{
		Success: true,
		ID:      id,
		Message: "Appointment request submitted successfully",
	})
}

// List returns all appointments, optionally filtered by status.
//
// @Summary      List appointments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  appointmentListResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/admin/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	if appointments == nil {
		appointments = []*domain.Appointment{}
	}
	return c.JSON(http.StatusOK, appointmentListResponse{Success: true, Appointments: appointments})
}

// Get returns a single appointment.
//
// @Summary      Get an appointment
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointmentResponse{Success: true, Appointment: appt})
}

// UpdateStatus sets a new lifecycle status on an appointment.
//
// @Summary      Update appointment status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Appointment id"
// @Param        body  body      statusUpdateRequest  true  "New status"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
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

	appt, err := h.service.UpdateStatus(c.Request().Context(), *principal, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(domain.EntityAppointment, req.Status).Inc()
	return c.JSON(http.StatusOK, appointmentResponse{Success: true, Appointment: appt})
}

// Reply records an admin reply and notifies the submitter.
//
// @Summary      Reply to an appointment request
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Appointment id"
// @Param        body  body      replyRequest  true  "Reply text"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/appointments/{id}/reply [post]
func (h *AppointmentHandler) Reply(c echo.Context) error {
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

	appt, err := h.service.Reply(c.Request().Context(), *principal, c.Param("id"), req.Reply)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointmentResponse{Success: true, Appointment: appt})
}
