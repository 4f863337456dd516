// Package pcap recovers WITS frames from packet capture files.
package pcap

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/Critlist/witskit/internal/wits"
)

// Frame is one WITS frame recovered from a capture, stamped with the
// capture time of the packet that completed it.
type Frame struct {
	Text     string    `json:"text"`
	Captured time.Time `json:"captured"`
	Flow     string    `json:"flow"`
}

// ReadFile scans a capture file and returns every WITS frame carried in
// TCP payloads on the given port, in capture order. Port 0 accepts every
// TCP packet. Each direction of each TCP conversation feeds its own
// extractor, so poll requests and frame responses cannot corrupt each
// other's boundaries.
func ReadFile(path string, port int) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	source, linkType, err := openReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scan(gopacket.NewPacketSource(source, linkType), port), nil
}

// openReader tries the classic pcap format first, then pcapng.
func openReader(f *os.File) (gopacket.PacketDataSource, layers.LinkType, error) {
	if r, err := pcapgo.NewReader(f); err == nil {
		return r, r.LinkType(), nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, 0, err
	}
	ng, err := pcapgo.NewNgReader(f, pcapgo.DefaultNgReaderOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("not a pcap or pcapng capture: %v", err)
	}
	return ng, ng.LinkType(), nil
}

func scan(source *gopacket.PacketSource, port int) []Frame {
	extractors := make(map[string]*wits.Extractor)
	var frames []Frame

	for packet := range source.Packets() {
		tcpLayer := packet.Layer(layers.LayerTypeTCP)
		if tcpLayer == nil {
			continue
		}
		tcp, ok := tcpLayer.(*layers.TCP)
		if !ok {
			continue
		}
		if port != 0 && int(tcp.SrcPort) != port && int(tcp.DstPort) != port {
			continue
		}
		if len(tcp.Payload) == 0 {
			continue
		}

		flow := flowKey(packet, tcp)
		e := extractors[flow]
		if e == nil {
			e = wits.NewExtractor()
			extractors[flow] = e
		}

		captured := packet.Metadata().Timestamp
		for _, text := range e.Feed(tcp.Payload) {
			frames = append(frames, Frame{Text: text, Captured: captured, Flow: flow})
		}
	}
	return frames
}

// flowKey identifies one direction of one TCP conversation.
func flowKey(packet gopacket.Packet, tcp *layers.TCP) string {
	if net := packet.NetworkLayer(); net != nil {
		return net.NetworkFlow().String() + " " + tcp.TransportFlow().String()
	}
	return tcp.TransportFlow().String()
}
