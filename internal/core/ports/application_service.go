package ports

import (
	"context"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// CreateApplicationInput carries a validated career application submission.
// The resume file travels separately as a ResumeUpload.
type CreateApplicationInput struct {
	FullName    string
	Email       string
	Phone       string
	Position    string
	CoverLetter string
}

// ResumeDownload is a stored resume prepared for client download.
type ResumeDownload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ApplicationService defines use-case operations for career applications.
type ApplicationService interface {
	// Create validates and stores the resume, then persists the application
	// with status NEW. A rejected file aborts before any write.
	Create(ctx context.Context, in CreateApplicationInput, resume ResumeUpload) (string, error)
	List(ctx context.Context, status string) ([]*domain.CareerApplication, error)
	Get(ctx context.Context, id string) (*domain.CareerApplication, error)
	UpdateStatus(ctx context.Context, actor domain.AdminPrincipal, id, status string) (*domain.CareerApplication, error)
	// Resume returns the stored resume for download. A missing application
	// yields domain.ErrApplicationNotFound before any file read.
	Resume(ctx context.Context, id string) (*ResumeDownload, error)
}
