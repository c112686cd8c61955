package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment request.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

var appointmentStatuses = map[AppointmentStatus]struct{}{
	AppointmentPending:   {},
	AppointmentConfirmed: {},
	AppointmentCompleted: {},
	AppointmentCancelled: {},
}

// Valid reports whether s is a member of the appointment status enumeration.
func (s AppointmentStatus) Valid() bool {
	_, ok := appointmentStatuses[s]
	return ok
}

var ErrAppointmentNotFound = errors.New("appointment not found")

// ErrInvalidStatus is returned when a status update names a value outside the
// entity's enumeration. The stored status is left untouched.
var ErrInvalidStatus = errors.New("invalid status value")

// ErrReplyTooShort guards the minimum admin reply length (10 characters).
var ErrReplyTooShort = errors.New("reply must be at least 10 characters")

// Appointment is a public appointment request. Created with status PENDING;
// only an authenticated admin mutates status and adminReply, never the
// submitter. Records are never deleted.
type Appointment struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	FullName      string            `json:"full_name" bson:"full_name"`
	Email         string            `json:"email" bson:"email"`
	Phone         string            `json:"phone" bson:"phone"`
	ServiceType   string            `json:"service_type" bson:"service_type"`
	PreferredDate string            `json:"preferred_date" bson:"preferred_date"`
	PreferredTime string            `json:"preferred_time" bson:"preferred_time"`
	Message       string            `json:"message" bson:"message"`
	Status        AppointmentStatus `json:"status" bson:"status"`
	AdminReply    string            `json:"admin_reply,omitempty" bson:"admin_reply,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}
