package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// stubRequestRepo is an in-memory ports.RequestRepository used across the
// service tests. Records are keyed by sequential ids ("1", "2", ...).
type stubRequestRepo[T any] struct {
	records  map[string]*T
	order    []string
	notFound error

	statusUpdates map[string]string
	replies       []replyCall

	createErr error
	findErr   error
}

type replyCall struct {
	id        string
	reply     string
	repliedAt *time.Time
	status    string
}

func newStubRequestRepo[T any](notFound error) *stubRequestRepo[T] {
	return &stubRequestRepo[T]{
		records:       make(map[string]*T),
		notFound:      notFound,
		statusUpdates: make(map[string]string),
	}
}

func (r *stubRequestRepo[T]) add(rec *T) string {
	id := strconv.Itoa(len(r.order) + 1)
	r.records[id] = rec
	r.order = append(r.order, id)
	return id
}

func (r *stubRequestRepo[T]) Create(_ context.Context, rec *T) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	return r.add(rec), nil
}

func (r *stubRequestRepo[T]) List(_ context.Context, _ string) ([]*T, error) {
	out := make([]*T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *stubRequestRepo[T]) FindByID(_ context.Context, id string) (*T, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if rec, ok := r.records[id]; ok {
		return rec, nil
	}
	return nil, r.notFound
}

func (r *stubRequestRepo[T]) UpdateStatus(_ context.Context, id, status string) error {
	if _, ok := r.records[id]; !ok {
		return r.notFound
	}
	r.statusUpdates[id] = status
	return nil
}

func (r *stubRequestRepo[T]) SetReply(_ context.Context, id, reply string, repliedAt *time.Time, status string) error {
	if _, ok := r.records[id]; !ok {
		return r.notFound
	}
	r.replies = append(r.replies, replyCall{id: id, reply: reply, repliedAt: repliedAt, status: status})
	return nil
}

func (r *stubRequestRepo[T]) CountByStatus(_ context.Context, status string) (int64, error) {
	if status == "" {
		return int64(len(r.records)), nil
	}
	var n int64
	for _, rec := range r.records {
		if fmt.Sprint(statusOf(rec)) == status {
			n++
		}
	}
	return n, nil
}

func (r *stubRequestRepo[T]) ListRecent(_ context.Context, _ string, limit int64) ([]*T, error) {
	out := make([]*T, 0, limit)
	for i := len(r.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.records[r.order[i]])
	}
	return out, nil
}

// statusOf extracts the status field from the three request kinds so the
// count stub can filter without reflection gymnastics in every test.
func statusOf(rec any) any {
	switch v := rec.(type) {
	case *domain.Appointment:
		return v.Status
	case *domain.CareerApplication:
		return v.Status
	case *domain.ContactMessage:
		return v.Status
	default:
		return ""
	}
}

// stubAudit records audit calls for assertions.
type stubAudit struct {
	entries []auditCall
}

type auditCall struct {
	actor      domain.AdminPrincipal
	action     string
	entityType string
	entityID   string
}

func (a *stubAudit) Record(_ context.Context, actor domain.AdminPrincipal, action, entityType, entityID string) {
	a.entries = append(a.entries, auditCall{actor: actor, action: action, entityType: entityType, entityID: entityID})
}

// stubNotifier captures dispatched notifications.
type stubNotifier struct {
	sent []ports.Notification
}

func (n *stubNotifier) Notify(notification ports.Notification) {
	n.sent = append(n.sent, notification)
}

// stubFileStore implements ports.FileStore in memory.
type stubFileStore struct {
	validateErr error
	storeErr    error
	files       map[string][]byte
	contentType string
	retrieved   int
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{files: make(map[string][]byte), contentType: "application/pdf"}
}

func (f *stubFileStore) Validate(_ ports.ResumeUpload) error {
	return f.validateErr
}

func (f *stubFileStore) Store(_ context.Context, upload ports.ResumeUpload) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	path := "resume_" + strconv.Itoa(len(f.files)+1) + ".pdf"
	f.files[path] = upload.Data
	return path, nil
}

func (f *stubFileStore) Retrieve(_ context.Context, relPath string) ([]byte, string, error) {
	f.retrieved++
	data, ok := f.files[relPath]
	if !ok {
		return nil, "", fmt.Errorf("open %s: no such file", relPath)
	}
	return data, f.contentType, nil
}

func testActor() domain.AdminPrincipal {
	return domain.AdminPrincipal{
		ID:       "admin_1",
		Email:    "admin@havenbridge.com",
		FullName: "System Administrator",
		Role:     domain.RoleSuperAdmin,
	}
}
