package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/api"
	"github.com/havenbridge/homecare-api/internal/api/handler"
	"github.com/havenbridge/homecare-api/internal/api/middleware"
	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// stubTokenService accepts exactly the token "test-token" and resolves it to
// admin_1.
type stubTokenService struct{}

func (stubTokenService) Issue(admin *domain.Admin) (string, error) {
	return "test-token", nil
}

func (stubTokenService) Verify(token string) (*ports.TokenClaims, error) {
	if token != "test-token" {
		return nil, domain.ErrTokenInvalid
	}
	return &ports.TokenClaims{AdminID: "admin_1", Email: "admin@havenbridge.com", Role: domain.RoleSuperAdmin}, nil
}

type stubAdminRepo struct{}

func (stubAdminRepo) FindByEmail(_ context.Context, _ string) (*domain.Admin, error) {
	return nil, domain.ErrAdminNotFound
}

func (stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	if id != "admin_1" {
		return nil, domain.ErrAdminNotFound
	}
	return &domain.Admin{
		ID:       "admin_1",
		Email:    "admin@havenbridge.com",
		FullName: "System Administrator",
		Role:     domain.RoleSuperAdmin,
	}, nil
}

func (stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	return admin, nil
}

func (stubAdminRepo) UpdateLastLogin(_ context.Context, _ string, _ time.Time) error {
	return nil
}

// --- Stub services ---

type stubAuthService struct {
	token  string
	admin  *domain.Admin
	err    error
	logins int
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.Admin, error) {
	s.logins++
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.admin, nil
}

type stubAppointmentService struct {
	created []ports.CreateAppointmentInput
	actors  []domain.AdminPrincipal
	appt    *domain.Appointment
	list    []*domain.Appointment
	err     error
}

func (s *stubAppointmentService) Create(_ context.Context, in ports.CreateAppointmentInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, in)
	return "appt_1", nil
}

func (s *stubAppointmentService) List(_ context.Context, _ string) ([]*domain.Appointment, error) {
	return s.list, s.err
}

func (s *stubAppointmentService) Get(_ context.Context, _ string) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.appt, nil
}

func (s *stubAppointmentService) UpdateStatus(_ context.Context, actor domain.AdminPrincipal, _, _ string) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.actors = append(s.actors, actor)
	return s.appt, nil
}

func (s *stubAppointmentService) Reply(_ context.Context, actor domain.AdminPrincipal, _, _ string) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.actors = append(s.actors, actor)
	return s.appt, nil
}

type stubApplicationService struct {
	created []ports.CreateApplicationInput
	uploads []ports.ResumeUpload
	app     *domain.CareerApplication
	list    []*domain.CareerApplication
	resume  *ports.ResumeDownload
	err     error
}

func (s *stubApplicationService) Create(_ context.Context, in ports.CreateApplicationInput, resume ports.ResumeUpload) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, in)
	s.uploads = append(s.uploads, resume)
	return "app_1", nil
}

func (s *stubApplicationService) List(_ context.Context, _ string) ([]*domain.CareerApplication, error) {
	return s.list, s.err
}

func (s *stubApplicationService) Get(_ context.Context, _ string) (*domain.CareerApplication, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.app, nil
}

func (s *stubApplicationService) UpdateStatus(_ context.Context, _ domain.AdminPrincipal, _, _ string) (*domain.CareerApplication, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.app, nil
}

func (s *stubApplicationService) Resume(_ context.Context, _ string) (*ports.ResumeDownload, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resume, nil
}

type stubMessageService struct {
	created []ports.CreateMessageInput
	msg     *domain.ContactMessage
	list    []*domain.ContactMessage
	err     error
}

func (s *stubMessageService) Create(_ context.Context, in ports.CreateMessageInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, in)
	return "msg_1", nil
}

func (s *stubMessageService) List(_ context.Context, _ string) ([]*domain.ContactMessage, error) {
	return s.list, s.err
}

func (s *stubMessageService) Get(_ context.Context, _ string) (*domain.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.msg, nil
}

func (s *stubMessageService) UpdateStatus(_ context.Context, _ domain.AdminPrincipal, _, _ string) (*domain.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.msg, nil
}

func (s *stubMessageService) Reply(_ context.Context, _ domain.AdminPrincipal, _, _ string) (*domain.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.msg, nil
}

type stubOverviewService struct {
	overview *ports.Overview
	err      error
}

func (s *stubOverviewService) Overview(_ context.Context) (*ports.Overview, error) {
	return s.overview, s.err
}

// testServices bundles the stubs behind one test server.
type testServices struct {
	auth         *stubAuthService
	appointments *stubAppointmentService
	applications *stubApplicationService
	messages     *stubMessageService
	overview     *stubOverviewService
}

func newTestServices() *testServices {
	return &testServices{
		auth:         &stubAuthService{},
		appointments: &stubAppointmentService{},
		applications: &stubApplicationService{},
		messages:     &stubMessageService{},
		overview:     &stubOverviewService{},
	}
}

// newTestServer wires the handlers into a bare Echo instance with the real
// validator, error handler and auth guard, but without the operational
// middleware the production router carries.
func newTestServer(svcs *testServices) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	guard := middleware.NewAuthGuard(stubTokenService{}, stubAdminRepo{})

	appointments := handler.NewAppointmentHandler(svcs.appointments)
	applications := handler.NewApplicationHandler(svcs.applications)
	messages := handler.NewMessageHandler(svcs.messages)

	e.POST("/api/appointments", appointments.Create)
	e.POST("/api/careers/apply", applications.Create)
	e.POST("/api/contact", messages.Create)
	e.POST("/api/admin/login", handler.NewAuthHandler(svcs.auth).Login)

	admin := e.Group("/api/admin", guard.Middleware())
	admin.GET("/appointments", appointments.List)
	admin.GET("/appointments/:id", appointments.Get)
	admin.PUT("/appointments/:id/status", appointments.UpdateStatus)
	admin.POST("/appointments/:id/reply", appointments.Reply)
	admin.GET("/careers/:id/resume", applications.Resume)
	admin.PUT("/careers/:id/status", applications.UpdateStatus)
	admin.PUT("/messages/:id/status", messages.UpdateStatus)
	admin.POST("/messages/:id/reply", messages.Reply)
	admin.GET("/overview", handler.NewOverviewHandler(svcs.overview).Overview)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
