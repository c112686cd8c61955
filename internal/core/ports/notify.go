package ports

import "context"

// NotificationKind selects the outbound mail template.
type NotificationKind string

const (
	// NotifyAppointmentConfirmation acknowledges a public appointment request.
	NotifyAppointmentConfirmation NotificationKind = "appointment_confirmation"
	// NotifyAdminReply forwards an admin reply to the original submitter.
	NotifyAdminReply NotificationKind = "admin_reply"
)

// Notification is a single outbound message. Fields beyond To/RecipientName
// are template-specific and may be empty for the other kind.
type Notification struct {
	Kind          NotificationKind
	To            string
	RecipientName string

	// Appointment confirmation fields.
	PreferredDate string
	PreferredTime string

	// Admin reply fields. Regarding is "appointment" or "message" and only
	// affects wording.
	ReplyText string
	Regarding string
}

// Notifier accepts a notification for eventual delivery and returns
// immediately. The triggering operation never waits on, or fails because of,
// delivery.
type Notifier interface {
	Notify(n Notification)
}

// MailSender performs the actual delivery attempt. When outbound mail is
// unconfigured, implementations log the message and report success.
type MailSender interface {
	Send(ctx context.Context, n Notification) error
}
