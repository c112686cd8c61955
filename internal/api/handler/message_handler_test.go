package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

func TestContactCreate_Success(t *testing.T) {
	svcs := newTestServices()
	e := newTestServer(svcs)

	rec := doJSON(e, http.MethodPost, "/api/contact",
		`{"full_name":"John Smith","email":"john@example.com","message":"Do you cover the north side of town?"}`, "")

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	if body["id"] != "msg_1" {
		t.Errorf("id: got %v", body["id"])
	}
	if len(svcs.messages.created) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(svcs.messages.created))
	}
}

func TestContactCreate_PhoneAndSubjectOptional(t *testing.T) {
	svcs := newTestServices()
	e := newTestServer(svcs)

	rec := doJSON(e, http.MethodPost, "/api/contact",
		`{"full_name":"John Smith","email":"john@example.com","message":"A question about weekend coverage"}`, "")

	assertStatus(t, rec, http.StatusOK)
}

func TestContactCreate_InvalidEmail(t *testing.T) {
	svcs := newTestServices()
	e := newTestServer(svcs)

	rec := doJSON(e, http.MethodPost, "/api/contact",
		`{"full_name":"John Smith","email":"nope","message":"A question about weekend coverage"}`, "")

	assertStatus(t, rec, http.StatusBadRequest)
	if len(svcs.messages.created) != 0 {
		t.Errorf("expected no create call, got %d", len(svcs.messages.created))
	}
}

func TestMessageReply_Success(t *testing.T) {
	svcs := newTestServices()
	now := time.Now().UTC()
	svcs.messages.msg = &domain.ContactMessage{
		ID:         "msg_1",
		Status:     domain.MessageReplied,
		AdminReply: "Yes, we cover your whole area.",
		RepliedAt:  &now,
	}
	e := newTestServer(svcs)

	rec := doJSON(e, http.MethodPost, "/api/admin/messages/msg_1/reply",
		`{"reply":"Yes, we cover your whole area."}`, "test-token")

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	msg, _ := body["message"].(map[string]any)
	if msg["status"] != string(domain.MessageReplied) {
		t.Errorf("status: got %v", msg["status"])
	}
	if msg["replied_at"] == nil {
		t.Error("expected replied_at to be set")
	}
}

func TestMessageUpdateStatus_NotFound(t *testing.T) {
	svcs := newTestServices()
	svcs.messages.err = domain.ErrMessageNotFound
	e := newTestServer(svcs)

	rec := doJSON(e, http.MethodPut, "/api/admin/messages/nope/status",
		`{"status":"READ"}`, "test-token")

	assertStatus(t, rec, http.StatusNotFound)
}

func TestOverview_Success(t *testing.T) {
	svcs := newTestServices()
	svcs.overview.overview = &ports.Overview{
		Appointments: ports.StatusCounts{Total: 3, Pending: 2},
		Messages:     ports.StatusCounts{Total: 1, Unread: 1},
	}
	e := newTestServer(svcs)

	rec := doJSON(e, http.MethodGet, "/api/admin/overview", "", "test-token")

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	overview, _ := body["overview"].(map[string]any)
	appointments, _ := overview["appointments"].(map[string]any)
	if appointments["total"] != float64(3) {
		t.Errorf("appointment total: got %v", appointments["total"])
	}
}

func TestOverview_RequiresToken(t *testing.T) {
	e := newTestServer(newTestServices())

	rec := doJSON(e, http.MethodGet, "/api/admin/overview", "", "bad-token")

	assertStatus(t, rec, http.StatusUnauthorized)
}
