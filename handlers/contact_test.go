package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/abdullah3034/portfolio-api/internal/contact"
)

type recordingNotifier struct {
	mu     sync.Mutex
	sent   []contact.Contact
	err    error
	wakeup chan struct{}
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{err: err, wakeup: make(chan struct{}, 16)}
}

func (n *recordingNotifier) Notify(ctx context.Context, c *contact.Contact) error {
	n.mu.Lock()
	n.sent = append(n.sent, *c)
	n.mu.Unlock()
	n.wakeup <- struct{}{}
	return n.err
}

func (n *recordingNotifier) waitForCall(t *testing.T) contact.Contact {
	t.Helper()
	select {
	case <-n.wakeup:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

func newContactRouter(repo contact.Repository, notifier *recordingNotifier, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	if notifier == nil {
		RegisterContact(api, repo, nil, auth)
	} else {
		RegisterContact(api, repo, notifier, auth)
	}
	return r
}

func validContactBody() map[string]any {
	return map[string]any{
		"name":    "Jo",
		"email":   "a@b.co",
		"subject": "Hello there",
		"message": "This is a test message.",
	}
}

func TestContactCreate(t *testing.T) {
	repo := contact.NewMemoryRepository()
	notifier := newRecordingNotifier(nil)
	r := newContactRouter(repo, notifier, allowAuth)

	w := doJSON(t, r, http.MethodPost, "/api/contact", validContactBody())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, "Message sent successfully!", body["message"])
	c, ok := body["contact"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "a@b.co", c["email"])
	require.Equal(t, "Hello there", c["subject"])
	require.NotEmpty(t, c["id"])
	require.Equal(t, 1, repo.Len())

	sent := notifier.waitForCall(t)
	require.Equal(t, "This is a test message.", sent.Message)
}

func TestContactCreateValidation(t *testing.T) {
	repo := contact.NewMemoryRepository()
	r := newContactRouter(repo, nil, allowAuth)

	body := validContactBody()
	body["message"] = "too short"
	w := doJSON(t, r, http.MethodPost, "/api/contact", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w), "errors")
	require.Equal(t, 0, repo.Len())
}

func TestContactCreateSurvivesNotifierFailure(t *testing.T) {
	repo := contact.NewMemoryRepository()
	notifier := newRecordingNotifier(errors.New("smtp down"))
	r := newContactRouter(repo, notifier, allowAuth)

	w := doJSON(t, r, http.MethodPost, "/api/contact", validContactBody())
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, repo.Len())
	notifier.waitForCall(t)
}

func TestContactListRequiresAuth(t *testing.T) {
	repo := contact.NewMemoryRepository()
	r := newContactRouter(repo, nil, denyAuth)

	w := doJSON(t, r, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "No token, authorization denied", decodeBody(t, w)["message"])
}

func TestContactListPagination(t *testing.T) {
	repo := contact.NewMemoryRepository()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, &contact.Contact{
			Name:    "Sender",
			Email:   "s@example.com",
			Subject: fmt.Sprintf("Subject %d", i),
			Message: "A long enough message body.",
		}))
	}
	r := newContactRouter(repo, nil, allowAuth)

	w := doJSON(t, r, http.MethodGet, "/api/contact?page=3&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(25), body["total"])
	require.Equal(t, float64(3), body["totalPages"])
	require.Equal(t, float64(3), body["currentPage"])
	require.Len(t, body["contacts"], 5)
}

func TestContactUpdateStatus(t *testing.T) {
	repo := contact.NewMemoryRepository()
	ctx := context.Background()
	msg := &contact.Contact{Name: "Sender", Email: "s@example.com", Subject: "A subject", Message: "A long enough message."}
	require.NoError(t, repo.Create(ctx, msg))
	r := newContactRouter(repo, nil, allowAuth)

	w := doJSON(t, r, http.MethodPut, "/api/contact/"+msg.ID.Hex()+"/status", map[string]any{"status": "read"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "read", decodeBody(t, w)["status"])

	w = doJSON(t, r, http.MethodPut, "/api/contact/"+msg.ID.Hex()+"/status", map[string]any{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactDelete(t *testing.T) {
	repo := contact.NewMemoryRepository()
	ctx := context.Background()
	msg := &contact.Contact{Name: "Sender", Email: "s@example.com", Subject: "A subject", Message: "A long enough message."}
	require.NoError(t, repo.Create(ctx, msg))
	r := newContactRouter(repo, nil, allowAuth)

	w := doJSON(t, r, http.MethodDelete, "/api/contact/"+msg.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Contact deleted successfully", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodDelete, "/api/contact/"+msg.ID.Hex(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Contact not found", decodeBody(t, w)["message"])
}
