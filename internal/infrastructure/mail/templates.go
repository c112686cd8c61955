package mail

import (
	"fmt"

	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// render selects the template for the notification kind and returns the
// subject and HTML body.
func render(n ports.Notification) (subject, body string) {
	switch n.Kind {
	case ports.NotifyAdminReply:
		return renderAdminReply(n)
	default:
		return renderAppointmentConfirmation(n)
	}
}

func renderAppointmentConfirmation(n ports.Notification) (string, string) {
	subject := "Appointment Request Received - HavenBridge Home Care"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0284c7;">Appointment Request Received</h2>
  <p>Dear %s,</p>
  <p>Thank you for requesting an appointment with HavenBridge Home Care. We have received your request and will review it shortly.</p>
  <div style="background-color: #f0f9ff; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Requested Date:</strong> %s</p>
    <p><strong>Requested Time:</strong> %s</p>
  </div>
  <p>One of our team members will contact you within 24-48 hours to confirm your appointment.</p>
  <p>If you have any urgent questions, please call us at (555) 123-4567.</p>
  <p>Best regards,<br>HavenBridge Home Care Team</p>
</div>`, n.RecipientName, n.PreferredDate, n.PreferredTime)
	return subject, body
}

func renderAdminReply(n ports.Notification) (string, string) {
	regarding := "Message"
	if n.Regarding == "appointment" {
		regarding = "Appointment"
	}
	subject := fmt.Sprintf("Response from HavenBridge Home Care - Your %s", regarding)
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0284c7;">Message from HavenBridge Home Care</h2>
  <p>Dear %s,</p>
  <div style="background-color: #f0f9ff; padding: 15px; border-radius: 5px; margin: 20px 0;">%s</div>
  <p>If you have any questions, please don't hesitate to contact us.</p>
  <p>Best regards,<br>HavenBridge Home Care Team</p>
</div>`, n.RecipientName, n.ReplyText)
	return subject, body
}
