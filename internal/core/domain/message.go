package domain

import (
	"errors"
	"time"
)

// MessageStatus is the lifecycle state of a contact message.
type MessageStatus string

const (
	MessageUnread  MessageStatus = "UNREAD"
	MessageRead    MessageStatus = "READ"
	MessageReplied MessageStatus = "REPLIED"
)

var messageStatuses = map[MessageStatus]struct{}{
	MessageUnread:  {},
	MessageRead:    {},
	MessageReplied: {},
}

// Valid reports whether s is a member of the message status enumeration.
func (s MessageStatus) Valid() bool {
	_, ok := messageStatuses[s]
	return ok
}

var ErrMessageNotFound = errors.New("message not found")

// ContactMessage is a public contact-form submission. Replying sets
// adminReply and repliedAt and moves the status to REPLIED.
type ContactMessage struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	FullName   string        `json:"full_name" bson:"full_name"`
	Email      string        `json:"email" bson:"email"`
	Phone      string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject    string        `json:"subject,omitempty" bson:"subject,omitempty"`
	Message    string        `json:"message" bson:"message"`
	Status     MessageStatus `json:"status" bson:"status"`
	AdminReply string        `json:"admin_reply,omitempty" bson:"admin_reply,omitempty"`
	RepliedAt  *time.Time    `json:"replied_at,omitempty" bson:"replied_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
}
