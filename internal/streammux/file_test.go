package streammux

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilePort_ReadAndEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.wits")
	if err := os.WriteFile(path, []byte("&&\n!!"), 0o644); err != nil {
		t.Fatalf("failed to write capture file: %v", err)
	}

	port, err := OpenFile(path, 0)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	defer port.Close()

	buf := make([]byte, 16)
	n, err := port.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(buf[:n]) != "&&\n!!" {
		t.Errorf("Read returned %q", string(buf[:n]))
	}

	_, err = port.Read(buf)
	if err != io.EOF {
		t.Errorf("Expected io.EOF at end of file, got %v", err)
	}
}

func TestFilePort_WriteIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.wits")
	if err := os.WriteFile(path, []byte("&&\n!!"), 0o644); err != nil {
		t.Fatalf("failed to write capture file: %v", err)
	}

	port, err := OpenFile(path, 0)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	defer port.Close()

	n, err := port.Write([]byte("&&\r\n"))
	if err != nil {
		t.Errorf("Write returned error: %v", err)
	}
	if n != 4 {
		t.Errorf("Write returned %d, want 4", n)
	}

	// The capture file must be untouched
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read capture file: %v", err)
	}
	if string(data) != "&&\n!!" {
		t.Errorf("capture file modified by Write: %q", string(data))
	}
}

func TestFilePort_ReadDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.wits")
	if err := os.WriteFile(path, []byte("&&\n!!"), 0o644); err != nil {
		t.Fatalf("failed to write capture file: %v", err)
	}

	port, err := OpenFile(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	defer port.Close()

	start := time.Now()
	port.Read(make([]byte, 16))
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Read was too fast for configured delay: %v", elapsed)
	}
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := OpenFile("/nonexistent/capture.wits", 0)
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
