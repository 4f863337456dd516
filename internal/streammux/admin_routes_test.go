package streammux

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestMux_AttachAdminRoutes tests the admin routes attachment
func TestMux_AttachAdminRoutes(t *testing.T) {
	mux := NewMux(&RecordingPort{})

	httpMux := http.NewServeMux()
	mux.AttachAdminRoutes(httpMux)

	// Debug routes are protected by tailscale auth, so they return 403 when
	// not authorized. We test that the routes are registered and respond
	// (even if with 403).

	t.Run("wits-tail_registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/debug/wits-tail", nil)
		w := httptest.NewRecorder()
		httpMux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("Route /debug/wits-tail should be registered, got 404")
		}
	})

	t.Run("wits-poll_registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/debug/wits-poll", nil)
		w := httptest.NewRecorder()
		httpMux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("Route /debug/wits-poll should be registered, got 404")
		}
	})

	t.Run("wits-status_registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/debug/wits-status", nil)
		w := httptest.NewRecorder()
		httpMux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("Route /debug/wits-status should be registered, got 404")
		}
	})

	t.Run("wits-stream_registered", func(t *testing.T) {
		// Bounded context so the SSE handler cannot block the test if the
		// request is let through.
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		req := httptest.NewRequest(http.MethodGet, "/debug/wits-stream", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		httpMux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("Route /debug/wits-stream should be registered, got 404")
		}
	})
}

// TestAttachAdminRoutes_TailPage tests the live tail page renders
func TestAttachAdminRoutes_TailPage(t *testing.T) {
	mux := NewMux(&RecordingPort{})

	httpMux := http.NewServeMux()
	mux.AttachAdminRoutes(httpMux)

	ts := httptest.NewServer(httpMux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/debug/wits-tail")
	if err != nil {
		t.Fatalf("failed to fetch tail page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		body.WriteString(scanner.Text())
	}
	if !strings.Contains(body.String(), "WITS live tail") {
		t.Error("tail page missing expected heading")
	}
}

// TestAttachAdminRoutes_Poll tests the poll endpoint triggers a frame request
func TestAttachAdminRoutes_Poll(t *testing.T) {
	port := &RecordingPort{}
	mux := NewMux(port)

	httpMux := http.NewServeMux()
	mux.AttachAdminRoutes(httpMux)

	ts := httptest.NewServer(httpMux)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/debug/wits-poll", "", nil)
	if err != nil {
		t.Fatalf("failed to post poll: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if port.Written() != "&&\r\n" {
		t.Errorf("Expected poll sequence written to port, got %q", port.Written())
	}

	// GET is not allowed on the poll endpoint
	getResp, err := http.Get(ts.URL + "/debug/wits-poll")
	if err != nil {
		t.Fatalf("failed to get poll: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET, got %d", getResp.StatusCode)
	}
}

// TestAttachAdminRoutes_Status tests the status endpoint returns JSON counters
func TestAttachAdminRoutes_Status(t *testing.T) {
	mux := NewMux(&RecordingPort{})
	mux.Subscribe()

	httpMux := http.NewServeMux()
	mux.AttachAdminRoutes(httpMux)

	ts := httptest.NewServer(httpMux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/debug/wits-status")
	if err != nil {
		t.Fatalf("failed to fetch status: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode status JSON: %v", err)
	}
	if status.Subscribers != 1 {
		t.Errorf("Subscribers = %d, want 1", status.Subscribers)
	}
	if status.FramesRead != 0 {
		t.Errorf("FramesRead = %d, want 0", status.FramesRead)
	}
}

// TestAttachAdminRoutes_StreamSSE_DataStreaming exercises the SSE handler
// happy path: subscribe, receive a frame, then client disconnects.
func TestAttachAdminRoutes_StreamSSE_DataStreaming(t *testing.T) {
	mux := NewMux(&RecordingPort{})

	httpMux := http.NewServeMux()
	mux.AttachAdminRoutes(httpMux)

	// Use httptest.Server so we get real HTTP with client-side context control.
	ts := httptest.NewServer(httpMux)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/debug/wits-stream", nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected text/event-stream, got %s", ct)
	}

	// Read the initial ping comment
	scanner := bufio.NewScanner(resp.Body)
	if scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ping") {
			t.Errorf("expected initial ping, got %q", line)
		}
	}

	// Give the handler time to park on its subscriber channel
	time.Sleep(10 * time.Millisecond)

	// Push a frame through the subscriber system
	mux.subscriberMu.Lock()
	for _, ch := range mux.subscribers {
		select {
		case ch <- "&&\r\n011323.38\r\n!!":
		default:
		}
	}
	mux.subscriberMu.Unlock()

	// Frames are emitted as one SSE data line per frame line, carriage
	// returns stripped
	var dataLines []string
	for i := 0; i < 10 && scanner.Scan(); i++ {
		line := scanner.Text()
		if strings.HasPrefix(line, "data: ") {
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		}
		if strings.Contains(line, "!!") {
			break
		}
	}
	want := []string{"&&", "011323.38", "!!"}
	if len(dataLines) != len(want) {
		t.Fatalf("Expected %d data lines, got %d: %q", len(want), len(dataLines), dataLines)
	}
	for i := range want {
		if dataLines[i] != want[i] {
			t.Errorf("Data line %d = %q, want %q", i, dataLines[i], want[i])
		}
	}

	// Cancel context to trigger client disconnect path
	cancel()
}

// TestAttachAdminRoutes_StreamSSE_ContextCancelled exercises the context
// cancellation path in the SSE handler.
func TestAttachAdminRoutes_StreamSSE_ContextCancelled(t *testing.T) {
	mux := NewMux(&RecordingPort{})

	httpMux := http.NewServeMux()
	mux.AttachAdminRoutes(httpMux)

	ts := httptest.NewServer(httpMux)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/debug/wits-stream", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	// Cancel quickly to exercise context cancellation path
	cancel()
	resp.Body.Close()
}
