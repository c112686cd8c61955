package domain

import (
	"errors"
	"fmt"
	"time"
)

// ApplicationStatus is the lifecycle state of a career application.
type ApplicationStatus string

const (
	ApplicationNew         ApplicationStatus = "NEW"
	ApplicationReviewing   ApplicationStatus = "REVIEWING"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

var applicationStatuses = map[ApplicationStatus]struct{}{
	ApplicationNew:         {},
	ApplicationReviewing:   {},
	ApplicationShortlisted: {},
	ApplicationRejected:    {},
}

// Valid reports whether s is a member of the application status enumeration.
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationStatuses[s]
	return ok
}

var ErrApplicationNotFound = errors.New("application not found")

// FileRejectedError reports an upload that failed the type or size check.
// Raised before any byte reaches disk or the store.
type FileRejectedError struct {
	Reason string
}

func (e *FileRejectedError) Error() string {
	return fmt.Sprintf("file rejected: %s", e.Reason)
}

// CareerApplication is a job application submitted with a resume file. The
// stored resume is owned 1:1 by its application and outlives no longer than
// the record referencing it.
type CareerApplication struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	FullName    string            `json:"full_name" bson:"full_name"`
	Email       string            `json:"email" bson:"email"`
	Phone       string            `json:"phone" bson:"phone"`
	Position    string            `json:"position" bson:"position"`
	CoverLetter string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	ResumePath  string            `json:"resume_path" bson:"resume_path"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}
