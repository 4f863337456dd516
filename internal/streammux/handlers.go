package streammux

import (
	"fmt"
	"log"

	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/wits"
)

// HandleFrame decodes one raw frame and records it. Decode warnings
// (unknown codes, bad values) are logged but do not fail the frame;
// only structural failures and storage errors propagate.
func HandleFrame(d *db.DB, dec *wits.Decoder, payload string) error {
	frame, err := dec.Decode(payload)
	if err != nil {
		return fmt.Errorf("failed to decode frame: %v", err)
	}
	if len(frame.Errors) > 0 {
		log.Printf("⚠️ frame decoded with %d warnings: %v", len(frame.Errors), frame.Errors)
	}
	if err := d.StoreFrame(frame); err != nil {
		return fmt.Errorf("failed to store frame: %v", err)
	}
	return nil
}
