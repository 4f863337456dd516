package streammux

import (
	"fmt"
	"os"
	"time"
)

// FilePort replays a recorded WITS file as a frame source. An optional
// per-read delay paces the replay so downstream consumers see a stream
// rather than one burst. Writes (poll requests) are accepted and ignored.
type FilePort struct {
	f         *os.File
	readDelay time.Duration
}

// OpenFile opens path for replay. A zero delay replays at full speed.
func OpenFile(path string, readDelay time.Duration) (*FilePort, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open WITS replay file: %w", err)
	}
	return &FilePort{f: f, readDelay: readDelay}, nil
}

func (p *FilePort) Read(b []byte) (int, error) {
	if p.readDelay > 0 {
		time.Sleep(p.readDelay)
	}
	return p.f.Read(b)
}

// Write discards poll requests; a replay file has nothing to ask.
func (p *FilePort) Write(b []byte) (int, error) {
	return len(b), nil
}

func (p *FilePort) Close() error {
	return p.f.Close()
}
