package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func listNotificationsAs(t *testing.T, server *Server, userID string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	req.Header.Set("X-User-Id", userID)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("list notifications returned %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode notifications: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %s", rr.Body.String())
	}
	return resp.Data
}

func TestListNotificationsRequiresUserHeader(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestQuoteCreationNotifiesCreator(t *testing.T) {
	server, _ := newTestServer()
	createQuoteAs(t, server, "brand-1", "create-1", validCreateBody())

	items := listNotificationsAs(t, server, "creator-1")
	if len(items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(items))
	}
	if items[0]["type"] != "quote_request" {
		t.Fatalf("unexpected type %v", items[0]["type"])
	}
	if items[0]["from_user_id"] != "brand-1" {
		t.Fatalf("unexpected from_user_id %v", items[0]["from_user_id"])
	}
	if items[0]["is_read"] != false {
		t.Fatalf("expected unread notification, got %v", items[0]["is_read"])
	}

	if items := listNotificationsAs(t, server, "brand-1"); len(items) != 0 {
		t.Fatalf("brand should have no notifications yet, got %d", len(items))
	}
}

func TestMarkNotificationReadOwnership(t *testing.T) {
	server, _ := newTestServer()
	createQuoteAs(t, server, "brand-1", "create-1", validCreateBody())

	items := listNotificationsAs(t, server, "creator-1")
	if len(items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(items))
	}
	notificationID, _ := items[0]["notification_id"].(string)
	if notificationID == "" {
		t.Fatalf("missing notification_id in %v", items[0])
	}

	// Another user cannot mark it.
	req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationID+"/read", nil)
	req.Header.Set("X-User-Id", "brand-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign notification, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/notifications/"+notificationID+"/read", nil)
	req.Header.Set("X-User-Id", "creator-1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("mark read returned %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Data struct {
			IsRead bool `json:"is_read"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode mark read: %v", err)
	}
	if !resp.Data.IsRead {
		t.Fatalf("expected is_read true, got %s", rr.Body.String())
	}
}

func TestMarkNotificationReadUnknownID(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/notifications/missing/read", nil)
	req.Header.Set("X-User-Id", "creator-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestNotificationStreamDeliversEvents(t *testing.T) {
	server, hub := newTestServer()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)
	req.Header.Set("X-User-Id", "creator-1")
	rr := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.mux.ServeHTTP(rr, req)
	}()

	// Wait for the subscription to be registered, then trigger a
	// notification through the public API.
	deadline := time.Now().Add(2 * time.Second)
	for !hub.HasSubscriber("creator-1") {
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("stream subscription never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	createReq := httptest.NewRequest(http.MethodPost, "/custom-quotes", bytes.NewReader(validCreateBody()))
	createReq.Header.Set("X-User-Id", "brand-1")
	createReq.Header.Set("Idempotency-Key", "stream-1")
	createRR := httptest.NewRecorder()
	server.mux.ServeHTTP(createRR, createReq)
	if createRR.Code != http.StatusCreated {
		cancel()
		t.Fatalf("create returned %d body=%s", createRR.Code, createRR.Body.String())
	}

	// Publish buffers the event before returning, and a closed channel still
	// yields its buffered values, so cancelling here cannot lose the event.
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stream handler did not terminate after cancellation")
	}

	body := rr.Body.String()
	if !strings.Contains(body, "event: newNotification") {
		t.Fatalf("expected a newNotification event, got %q", body)
	}
	if !strings.Contains(body, "quote_request") {
		t.Fatalf("expected notification payload in stream, got %q", body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestNotificationStreamRequiresUserHeader(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}
