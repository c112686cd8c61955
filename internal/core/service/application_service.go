package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// ApplicationService implements the career application lifecycle, including
// resume intake and authenticated download.
type ApplicationService struct {
	repo   ports.RequestRepository[domain.CareerApplication]
	files  ports.FileStore
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewApplicationService(
	repo ports.RequestRepository[domain.CareerApplication],
	files ports.FileStore,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{repo: repo, files: files, audit: audit, logger: logger}
}

// Create validates and stores the resume first, then persists the
// application with status NEW. A rejected file aborts before anything is
// written.
func (s *ApplicationService) Create(ctx context.Context, in ports.CreateApplicationInput, resume ports.ResumeUpload) (string, error) {
	if err := s.files.Validate(resume); err != nil {
		return "", err
	}

	resumePath, err := s.files.Store(ctx, resume)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", resume.Filename).Msg("failed to store resume")
		return "", err
	}

	app := &domain.CareerApplication{
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Position:    in.Position,
		CoverLetter: in.CoverLetter,
		ResumePath:  resumePath,
		Status:      domain.ApplicationNew,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, app)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create application")
		return "", err
	}

	s.logger.Info().Str("application_id", id).Str("position", in.Position).Msg("application created")
	return id, nil
}

func (s *ApplicationService) List(ctx context.Context, status string) ([]*domain.CareerApplication, error) {
	return s.repo.List(ctx, status)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.CareerApplication, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, actor domain.AdminPrincipal, id, status string) (*domain.CareerApplication, error) {
	newStatus := domain.ApplicationStatus(status)
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Updated application status to "+status, domain.EntityApplication, id)
	s.logger.Info().Str("application_id", id).Str("status", status).Str("admin_id", actor.ID).Msg("application status updated")

	return s.repo.FindByID(ctx, id)
}

// Resume loads the stored resume for download. The record lookup happens
// first so a missing application never touches the filesystem.
func (s *ApplicationService) Resume(ctx context.Context, id string) (*ports.ResumeDownload, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, contentType, err := s.files.Retrieve(ctx, app.ResumePath)
	if err != nil {
		s.logger.Error().Err(err).Str("application_id", id).Str("resume_path", app.ResumePath).Msg("failed to read resume")
		return nil, err
	}

	ext := filepath.Ext(app.ResumePath)
	filename := strings.Join(strings.Fields(app.FullName), "_") + "_Resume" + ext

	return &ports.ResumeDownload{Filename: filename, ContentType: contentType, Data: data}, nil
}
