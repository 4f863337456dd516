package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Critlist/witskit/internal/config"
	"github.com/Critlist/witskit/internal/streammux"
	"github.com/Critlist/witskit/internal/wits"
)

// mockFrame is the frame emitted by --mock sources, a minimal general
// record carrying bit depth (0108) and average ROP (0113).
const mockFrame = "&&\r\n01083650.40\r\n011323.38\r\n!!\r\n"

func runStream(args []string) {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	metric := fs.Bool("metric", false, "Decode values as metric units")
	jsonOut := fs.Bool("json", false, "Emit one JSON document per frame")
	raw := fs.Bool("raw", false, "Emit raw frame text without decoding")
	baud := fs.Int("baud", config.DefaultBaudRate, "Baud rate for serial sources")
	requestInterval := fs.Duration("request-interval", 0, "Poll the source at this interval (0 = passive)")
	mock := fs.Bool("mock", false, "Stream a built-in mock feed instead of a real source")
	fs.Parse(args)

	addr := fs.Arg(0)
	if addr == "" && !*mock {
		fmt.Fprintln(os.Stderr, "Usage: witskit stream [flags] <address>")
		fmt.Fprintln(os.Stderr, "Addresses: tcp://host:port, serial:///dev/ttyUSB0?baud=9600, file:///path/to/capture.wits")
		os.Exit(1)
	}

	var m streammux.FrameMux
	if *mock {
		addr = "mock"
		m = streammux.NewMockMux([]byte(mockFrame))
	} else {
		var muxOpts []streammux.MuxOption
		if *requestInterval > 0 {
			muxOpts = append(muxOpts, streammux.WithRequestInterval(*requestInterval))
		}
		var err error
		m, err = streammux.NewFromAddress(addr, streammux.PortOptions{BaudRate: *baud}, muxOpts...)
		if err != nil {
			log.Fatalf("Failed to open source %s: %v", addr, err)
		}
	}
	defer m.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		if err := m.Monitor(ctx); err != nil && err != context.Canceled {
			log.Printf("Source monitor stopped: %v", err)
		}
	}()

	opts := []wits.Option{wits.WithSource(addr)}
	if *metric {
		opts = append(opts, wits.WithMetricUnits())
	}

	id, frames := m.Subscribe()
	defer m.Unsubscribe(id)

	enc := json.NewEncoder(os.Stdout)
	count := 0
	for {
		select {
		case text, ok := <-frames:
			if !ok {
				wg.Wait()
				return
			}
			count++
			switch {
			case *raw:
				fmt.Println(text)
			case *jsonOut:
				enc.Encode(decodeStreamFrame(text, opts))
			default:
				printDecodedFrame(os.Stdout, count, decodeStreamFrame(text, opts))
				fmt.Println()
			}
		case <-ctx.Done():
			wg.Wait()
			return
		}
	}
}

// decodeStreamFrame decodes one live frame, folding decode failures into
// the frame's error list so a bad frame never stops the stream.
func decodeStreamFrame(text string, opts []wits.Option) *wits.DecodedFrame {
	frame, err := wits.Decode(text, opts...)
	if err != nil {
		return &wits.DecodedFrame{Timestamp: time.Now().UTC(), Errors: []string{err.Error()}}
	}
	return frame
}
