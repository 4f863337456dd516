// Package streammux multiplexes a single WITS byte source (serial port, TCP
// feed, replay file) to multiple subscribers. One Monitor goroutine reads the
// source, reassembles complete frames, and broadcasts each frame string to
// every subscriber channel. Commands (frame poll requests) are serialized to
// the same source.
package streammux

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"tailscale.com/tsweb"

	"github.com/Critlist/witskit/internal/wits"
)

var ErrWriteFailed = fmt.Errorf("failed to write to frame source")

//go:embed templates/*
var adminTemplateFS embed.FS

var tailTemplate = template.Must(template.ParseFS(adminTemplateFS, "templates/tail.html.tmpl"))

// Mux is a generic frame multiplexer over a single byte source. Subscribers
// receive complete frame strings ("&&" through "!!" inclusive).
type Mux[T FramePorter] struct {
	port         T
	subscribers  map[string]chan string
	subscriberMu sync.Mutex
	commandMu    sync.Mutex
	closing      bool
	closingMu    sync.Mutex

	requestInterval time.Duration

	stateMu       sync.Mutex
	framesRead    uint64
	framesDropped uint64
	lastFrame     string
	lastFrameAt   time.Time
}

// FrameMux is the interface the daemon and CLI program against, so mock,
// disabled, and real muxes interchange freely.
type FrameMux interface {
	// Subscribe creates a channel receiving every complete frame read from
	// the source. The returned ID identifies the channel for Unsubscribe.
	Subscribe() (string, chan string)
	// Unsubscribe removes and closes a subscriber channel.
	Unsubscribe(string)
	// RequestFrame writes the WITS poll sequence ("&&\r\n") to the source,
	// asking a requesting-mode server for its next frame.
	RequestFrame() error
	// SendCommand writes an arbitrary command line to the source.
	SendCommand(string) error
	// Monitor reads the source until it ends or ctx is cancelled,
	// broadcasting frames to subscribers.
	Monitor(context.Context) error
	// Close closes all subscriber channels and the underlying source.
	Close() error
	// Status reports counters for the admin surface.
	Status() Status
	// AttachAdminRoutes attaches debug endpoints (live tail, poll, status)
	// under /debug/ on the given mux.
	AttachAdminRoutes(*http.ServeMux)
}

// Status is a point-in-time snapshot of mux activity.
type Status struct {
	FramesRead    uint64    `json:"frames_read"`
	FramesDropped uint64    `json:"frames_dropped"`
	Subscribers   int       `json:"subscribers"`
	LastFrameAt   time.Time `json:"last_frame_at"`
	LastFrame     string    `json:"last_frame,omitempty"`
}

// NewMux wraps a frame source in a Mux.
func NewMux[T FramePorter](port T, opts ...MuxOption) *Mux[T] {
	var settings MuxSettings
	for _, opt := range opts {
		opt(&settings)
	}
	return &Mux[T]{
		port:            port,
		subscribers:     make(map[string]chan string),
		requestInterval: settings.RequestInterval,
	}
}

// randomID generates a random channel ID (8 byte random hex encoded value)
func randomID() string {
	b := make([]byte, 8)
	crand.Read(b)
	return hex.EncodeToString(b)
}

func (m *Mux[T]) Subscribe() (string, chan string) {
	id := randomID()
	ch := make(chan string)
	m.subscriberMu.Lock()
	defer m.subscriberMu.Unlock()
	m.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber from the mux.
func (m *Mux[T]) Unsubscribe(id string) {
	m.subscriberMu.Lock()
	defer m.subscriberMu.Unlock()
	if ch, ok := m.subscribers[id]; ok {
		close(ch)
		delete(m.subscribers, id)
	}
}

// RequestFrame asks a requesting-mode WITS server for its next frame.
func (m *Mux[T]) RequestFrame() error {
	return m.SendCommand(wits.StartMarker + "\r\n")
}

// SendCommand writes a command line to the source, appending a newline when
// missing.
func (m *Mux[T]) SendCommand(command string) error {
	m.commandMu.Lock()
	defer m.commandMu.Unlock()
	if !strings.HasSuffix(command, "\n") {
		command += "\n"
	}
	n, err := m.port.Write([]byte(command))
	if err != nil {
		return err
	}
	if n != len(command) {
		return ErrWriteFailed
	}
	return nil
}

// Monitor reads the source and broadcasts complete frames to subscribers.
// It returns nil when the source ends, ctx.Err() on cancellation, and the
// read error otherwise. When the mux has a request interval, Monitor also
// polls the source for frames on that interval.
func (m *Mux[T]) Monitor(ctx context.Context) error {
	extractor := wits.NewExtractor()
	frameChan := make(chan string)
	readErrChan := make(chan error, 1)

	// Reader goroutine: pull chunks from the port and push completed frames.
	// The blocking Read cannot stall the outer loop's context handling.
	go func() {
		defer close(frameChan)
		buf := make([]byte, 4096)
		for {
			n, err := m.port.Read(buf)
			if n > 0 {
				for _, frame := range extractor.Feed(buf[:n]) {
					select {
					case frameChan <- frame:
					case <-ctx.Done():
						return
					}
				}
			}
			if err != nil {
				if err != io.EOF {
					select {
					case readErrChan <- err:
					case <-ctx.Done():
					}
				}
				return
			}
		}
	}()

	var requestTick <-chan time.Time
	if m.requestInterval > 0 {
		ticker := time.NewTicker(m.requestInterval)
		defer ticker.Stop()
		requestTick = ticker.C
		if err := m.RequestFrame(); err != nil {
			return fmt.Errorf("initial frame request: %w", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErrChan:
			return err

		case <-requestTick:
			if err := m.RequestFrame(); err != nil {
				return fmt.Errorf("frame request: %w", err)
			}

		case frame, ok := <-frameChan:
			// channel closed means the source ended; that is stream end,
			// not an error
			if !ok {
				return nil
			}
			m.closingMu.Lock()
			if m.closing {
				m.closingMu.Unlock()
				return nil
			}
			m.closingMu.Unlock()

			m.stateMu.Lock()
			m.framesRead++
			m.lastFrame = frame
			m.lastFrameAt = time.Now()
			m.stateMu.Unlock()

			m.subscriberMu.Lock()
			for _, ch := range m.subscribers {
				select {
				case ch <- frame:
				default:
					// skip a full subscriber rather than block the loop
					m.stateMu.Lock()
					m.framesDropped++
					m.stateMu.Unlock()
				}
			}
			m.subscriberMu.Unlock()
		}
	}
}

func (m *Mux[T]) Close() error {
	m.closingMu.Lock()
	m.closing = true
	m.closingMu.Unlock()

	m.subscriberMu.Lock()
	defer m.subscriberMu.Unlock()
	for id, ch := range m.subscribers {
		close(ch)
		delete(m.subscribers, id)
	}
	return m.port.Close()
}

// Status returns a snapshot of mux counters.
func (m *Mux[T]) Status() Status {
	m.subscriberMu.Lock()
	subs := len(m.subscribers)
	m.subscriberMu.Unlock()

	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	return Status{
		FramesRead:    m.framesRead,
		FramesDropped: m.framesDropped,
		Subscribers:   subs,
		LastFrameAt:   m.lastFrameAt,
		LastFrame:     m.lastFrame,
	}
}

func (m *Mux[T]) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)

	// Live tail page driven by the SSE endpoint below.
	debug.HandleFunc("wits-tail", "live tail of WITS frames", func(w http.ResponseWriter, r *http.Request) {
		buf := bytes.NewBuffer(nil)
		if err := tailTemplate.Execute(buf, m.Status()); err != nil {
			http.Error(w, "Failed to render template", http.StatusInternalServerError)
			return
		}
		io.Copy(w, buf)
	})

	// API endpoint to trigger a frame poll on the source
	debug.HandleSilentFunc("wits-poll", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := m.RequestFrame(); err != nil {
			http.Error(w, "Failed to request frame", http.StatusInternalServerError)
			return
		}
		io.WriteString(w, "Requested frame from source")
	})

	// API endpoint reporting mux counters as JSON
	debug.HandleSilentFunc("wits-status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m.Status())
	})

	// API endpoint to issue Server-Side Events (SSE) carrying frames as they
	// arrive from the source.
	debug.HandleSilentFunc("wits-stream", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no") // Disable buffering for nginx

		id, c := m.Subscribe()
		defer m.Unsubscribe(id)

		// Send initial ping to establish connection
		w.Write([]byte(": ping\n\n"))
		w.(http.Flusher).Flush()

		for {
			select {
			case frame, ok := <-c:
				if !ok {
					return
				}
				// frames are multi-line; SSE data lines carry one line each
				for _, line := range strings.Split(frame, "\n") {
					fmt.Fprintf(w, "data: %s\n", strings.TrimRight(line, "\r"))
				}
				io.WriteString(w, "\n")
				w.(http.Flusher).Flush()
			case <-r.Context().Done():
				return
			}
		}
	})
}
