package streammux

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// MockFeedPort implements FramePorter for mock mode
type MockFeedPort struct {
	io.Reader
	io.WriteCloser
}

func (m *MockFeedPort) Write(p []byte) (n int, err error) {
	return m.WriteCloser.Write(p)
}

// NewMockMux creates a Mux backed by a mock port that emits the given
// frame once a second, the usual Level 0 report cadence.
func NewMockMux(frame []byte) *Mux[*MockFeedPort] {
	r, w := io.Pipe()
	f, err := os.CreateTemp(".", "mock_wits_port")
	if err != nil {
		panic("failed to create temp file for mock WITS port: " + err.Error())
	}
	log.Printf("Writing mock WITS port received input at %s", f.Name())

	mockPort := &MockFeedPort{
		Reader:      r,
		WriteCloser: f,
	}

	// generate frames periodically to simulate a live feed
	go func() {
		defer w.Close()
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			w.Write(frame)
		}
	}()

	return NewMux(mockPort)
}

// MockPort implements FramePorter with configurable behaviour for testing.
// It provides fine-grained control over reads, writes, errors, and latency.
type MockPort struct {
	mu sync.Mutex

	// ReadBuffer holds data to be returned by Read calls
	ReadBuffer *bytes.Buffer

	// WriteBuffer captures data written to the port
	WriteBuffer *bytes.Buffer

	// ReadLatency adds a delay to each Read call
	ReadLatency time.Duration

	// WriteLatency adds a delay to each Write call
	WriteLatency time.Duration

	// ReadError is returned by the next Read call if set
	ReadError error

	// WriteError is returned by the next Write call if set
	WriteError error

	// CloseError is returned by Close if set
	CloseError error

	// Closed indicates whether Close was called
	Closed bool

	// ReadCalls records the number of Read calls
	ReadCalls int

	// WriteCalls records the number of Write calls
	WriteCalls int

	// BlockReads causes Read to block until data is added or Close is called
	BlockReads bool

	// readCond is used to signal blocked readers
	readCond *sync.Cond
}

// NewMockPort creates a new MockPort for testing.
func NewMockPort() *MockPort {
	mp := &MockPort{
		ReadBuffer:  bytes.NewBuffer(nil),
		WriteBuffer: bytes.NewBuffer(nil),
	}
	mp.readCond = sync.NewCond(&mp.mu)
	return mp
}

// Read reads from the read buffer, optionally simulating latency and errors.
func (m *MockPort) Read(p []byte) (n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadCalls++

	if m.Closed {
		return 0, errors.New("port closed")
	}

	if m.ReadError != nil {
		err := m.ReadError
		m.ReadError = nil
		return 0, err
	}

	if m.ReadLatency > 0 {
		m.mu.Unlock()
		time.Sleep(m.ReadLatency)
		m.mu.Lock()
	}

	// If blocking reads are enabled and buffer is empty, wait for data
	if m.BlockReads && m.ReadBuffer.Len() == 0 {
		for !m.Closed && m.ReadBuffer.Len() == 0 {
			m.readCond.Wait()
		}
		if m.Closed {
			return 0, errors.New("port closed")
		}
	}

	return m.ReadBuffer.Read(p)
}

// Write writes to the write buffer, optionally simulating latency and errors.
func (m *MockPort) Write(p []byte) (n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCalls++

	if m.Closed {
		return 0, errors.New("port closed")
	}

	if m.WriteError != nil {
		err := m.WriteError
		m.WriteError = nil
		return 0, err
	}

	if m.WriteLatency > 0 {
		m.mu.Unlock()
		time.Sleep(m.WriteLatency)
		m.mu.Lock()
	}

	return m.WriteBuffer.Write(p)
}

// Close marks the port as closed.
func (m *MockPort) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Closed = true
	m.readCond.Broadcast() // Wake up any blocked readers

	return m.CloseError
}

// AddReadData adds data to be returned by subsequent Read calls.
func (m *MockPort) AddReadData(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadBuffer.Write(data)
	m.readCond.Signal() // Wake up a blocked reader
}

// GetWrittenData returns all data written to the port.
func (m *MockPort) GetWrittenData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.WriteBuffer.Bytes()
}

// Reset clears all buffers and resets state.
func (m *MockPort) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadBuffer.Reset()
	m.WriteBuffer.Reset()
	m.ReadCalls = 0
	m.WriteCalls = 0
	m.Closed = false
	m.ReadError = nil
	m.WriteError = nil
	m.CloseError = nil
	m.ReadLatency = 0
	m.WriteLatency = 0
}
