package ports

import "context"

// ResumeUpload carries an uploaded resume through validation and storage.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// FileStore validates and persists uploaded resumes and serves them back.
type FileStore interface {
	// Validate rejects uploads outside the MIME allow-list (PDF, DOC, DOCX)
	// or above the size ceiling with a *domain.FileRejectedError. Nothing is
	// written on rejection.
	Validate(upload ResumeUpload) error
	// Store writes the file under a collision-resistant name inside the
	// resume directory (created if absent) and returns the relative path.
	// Existing files are never overwritten.
	Store(ctx context.Context, upload ResumeUpload) (string, error)
	// Retrieve reads the stored file and infers its content type from the
	// extension, defaulting to application/octet-stream.
	Retrieve(ctx context.Context, relPath string) (data []byte, contentType string, err error)
}
