package streammux

import (
	"fmt"
	"net"
	"time"
)

// tcpDialTimeout bounds the initial connection attempt to a WITS server.
const tcpDialTimeout = 10 * time.Second

// TCPPort is a FramePorter over a TCP connection to a WITS server.
type TCPPort struct {
	net.Conn
}

// DialTCP connects to a WITS server at host:port.
func DialTCP(addr string) (*TCPPort, error) {
	conn, err := net.DialTimeout("tcp", addr, tcpDialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to WITS server %s: %w", addr, err)
	}
	return &TCPPort{Conn: conn}, nil
}
