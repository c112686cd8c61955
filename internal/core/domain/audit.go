package domain

import "time"

// Entity type labels used in audit entries.
const (
	EntityAppointment = "appointment"
	EntityApplication = "career_application"
	EntityMessage     = "contact_message"
)

// AuditLogEntry is an immutable record of a mutating admin action. The actor
// name and email are denormalized at write time so listings need no join.
type AuditLogEntry struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	AdminID    string    `json:"admin_id" bson:"admin_id"`
	AdminName  string    `json:"admin_name" bson:"admin_name"`
	AdminEmail string    `json:"admin_email" bson:"admin_email"`
	Action     string    `json:"action" bson:"action"`
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
