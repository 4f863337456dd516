package streammux

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial"
)

// NewSerialMux opens a serial device with the given port options and
// wraps it in a Mux.
func NewSerialMux(device string, opts PortOptions, muxOpts ...MuxOption) (*Mux[serial.Port], error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}
	return NewMux(port, muxOpts...), nil
}

// NewTCPMux connects to a WITS server over TCP and wraps the connection
// in a Mux.
func NewTCPMux(addr string, muxOpts ...MuxOption) (*Mux[*TCPPort], error) {
	port, err := DialTCP(addr)
	if err != nil {
		return nil, err
	}
	return NewMux(port, muxOpts...), nil
}

// NewFileMux replays a recorded WITS capture through a Mux.
func NewFileMux(path string, readDelay time.Duration, muxOpts ...MuxOption) (*Mux[*FilePort], error) {
	port, err := OpenFile(path, readDelay)
	if err != nil {
		return nil, err
	}
	return NewMux(port, muxOpts...), nil
}

// NewFromAddress builds a mux from a source address:
//
//	tcp://host:port         live TCP feed
//	serial:///dev/ttyUSB0   serial device, ?baud= overrides opts
//	file:///path/to/capture file replay, ?delay= paces reads (e.g. 50ms)
//
// A bare string without a scheme is treated as a serial device path.
func NewFromAddress(addr string, opts PortOptions, muxOpts ...MuxOption) (FrameMux, error) {
	if !strings.Contains(addr, "://") {
		return NewSerialMux(addr, opts, muxOpts...)
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("parse source address %q: %w", addr, err)
	}
	switch u.Scheme {
	case "tcp":
		return NewTCPMux(u.Host, muxOpts...)
	case "serial":
		device := u.Path
		if device == "" {
			// serial://COM3 puts the device in the host part.
			device = u.Host
		}
		if baud := u.Query().Get("baud"); baud != "" {
			b, err := strconv.Atoi(baud)
			if err != nil {
				return nil, fmt.Errorf("invalid baud rate %q", baud)
			}
			opts.BaudRate = b
		}
		return NewSerialMux(device, opts, muxOpts...)
	case "file":
		var delay time.Duration
		if d := u.Query().Get("delay"); d != "" {
			delay, err = time.ParseDuration(d)
			if err != nil {
				return nil, fmt.Errorf("invalid replay delay %q", d)
			}
		}
		return NewFileMux(u.Path, delay, muxOpts...)
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}
