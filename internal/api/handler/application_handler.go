package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenbridge/homecare-api/internal/api/metrics"
	"github.com/havenbridge/homecare-api/internal/api/middleware"
	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// ApplicationHandler handles public career applications and the admin review
// lifecycle, including resume download.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applicationResponse struct {
	Success     bool                      `json:"success"`
	Application *domain.CareerApplication `json:"application"`
}

type applicationListResponse struct {
	Success      bool                        `json:"success"`
	Applications []*domain.CareerApplication `json:"applications"`
}

// Create handles the public multipart career application form.
//
// @Summary      Submit a career application
// @Tags         public
// @Accept       multipart/form-data
// @Produce      json
// @Param        full_name     formData  string  true   "Applicant full name"
// @Param        email         formData  string  true   "Applicant email"
// @Param        phone         formData  string  true   "Applicant phone"
// @Param        position      formData  string  true   "Position applied for"
// @Param        cover_letter  formData  string  false  "Cover letter"
// @Param        resume        formData  file    true   "Resume (PDF, DOC or DOCX, max 10MB)"
// @Success      200  {object}  submissionResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/careers/apply [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	req := applicationRequest{
		FullName:    c.FormValue("full_name"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		Position:    c.FormValue("position"),
		CoverLetter: c.FormValue("cover_letter"),
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return NewFieldError("resume", "resume file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open resume upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read resume upload: %w", err)
	}

	upload := ports.ResumeUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Data:        data,
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateApplicationInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		CoverLetter: req.CoverLetter,
	}, upload)
	if err != nil {
		metrics.ResumeUploadsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.ResumeUploadsTotal.WithLabelValues("ok").Inc()
	metrics.SubmissionsTotal.WithLabelValues("application").Inc()
	return c.JSON(http.StatusOK, submissionResponse{
		Success: true,
		ID:      id,
		Message: "Application submitted successfully",
	})
}

// List returns all career applications, optionally filtered by status.
//
// @Summary      List career applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  applicationListResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/admin/careers [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	applications, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	if applications == nil {
		applications = []*domain.CareerApplication{}
	}
	return c.JSON(http.StatusOK, applicationListResponse{Success: true, Applications: applications})
}

// Get returns a single career application.
//
// @Summary      Get a career application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/careers/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationResponse{Success: true, Application: app})
}

// UpdateStatus sets a new review status on an application.
//
// @Summary      Update application status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application id"
// @Param        body  body      statusUpdateRequest  true  "New status"
// @Success      200   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/careers/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
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

	app, err := h.service.UpdateStatus(c.Request().Context(), *principal, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(domain.EntityApplication, req.Status).Inc()
	return c.JSON(http.StatusOK, applicationResponse{Success: true, Application: app})
}

// Resume streams the stored resume back as a file download.
//
// @Summary      Download an applicant resume
// @Tags         admin
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/careers/{id}/resume [get]
func (h *ApplicationHandler) Resume(c echo.Context) error {
	download, err := h.service.Resume(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, download.Filename))
	return c.Blob(http.StatusOK, download.ContentType, download.Data)
}
