package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Critlist/witskit/internal/wits"
)

// StoredFrame is one row of the frames table.
type StoredFrame struct {
	FrameID    string    `json:"frame_id"`
	Source     string    `json:"source,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
	PointCount int       `json:"point_count"`
	ErrorCount int       `json:"error_count"`
}

// StoredPoint is one decoded data point joined with its frame metadata.
type StoredPoint struct {
	FrameID    string    `json:"frame_id"`
	Source     string    `json:"source,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
	Code       string    `json:"code"`
	RecordType int       `json:"record_type"`
	Name       string    `json:"name"`
	RawValue   string    `json:"raw_value"`
	Value      *float64  `json:"value,omitempty"`
	Text       string    `json:"text,omitempty"`
	Unit       string    `json:"unit,omitempty"`
}

// SymbolSummary describes one symbol code seen in the stored history.
type SymbolSummary struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit,omitempty"`
	Count     int64     `json:"count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// StoreFrame records a decoded frame, its data points, and any decode
// warnings in a single transaction. Timestamps are stored as Unix
// milliseconds so fast replays keep their ordering.
func (db *DB) StoreFrame(frame *wits.DecodedFrame) error {
	if frame == nil {
		return fmt.Errorf("nil frame")
	}

	frameID := uuid.New().String()
	receivedAt := frame.Timestamp
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO frames (frame_id, source, received_at, point_count, error_count)
		 VALUES (?, ?, ?, ?, ?)`,
		frameID, frame.Source, receivedAt.UnixMilli(), len(frame.Points), len(frame.Errors),
	); err != nil {
		return fmt.Errorf("failed to insert frame: %w", err)
	}

	for _, p := range frame.Points {
		var value any
		if p.Value != nil {
			value = *p.Value
		}
		if _, err := tx.Exec(
			`INSERT INTO data_points (frame_id, code, record_type, name, raw_value, value, text_value, unit)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			frameID, p.Code, p.RecordType, p.Name, p.RawValue, value, p.Text, string(p.Unit),
		); err != nil {
			return fmt.Errorf("failed to insert data point %s: %w", p.Code, err)
		}
	}

	for i, msg := range frame.Errors {
		if _, err := tx.Exec(
			`INSERT INTO decode_errors (frame_id, seq, message) VALUES (?, ?, ?)`,
			frameID, i, msg,
		); err != nil {
			return fmt.Errorf("failed to insert decode error: %w", err)
		}
	}

	return tx.Commit()
}

// StoreFrames records a batch of decoded frames. It returns how many were
// stored before the first failure.
func (db *DB) StoreFrames(frames []*wits.DecodedFrame) (int, error) {
	stored := 0
	for _, frame := range frames {
		if err := db.StoreFrame(frame); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// QueryFrames returns stored frames newest first, optionally bounded by
// since/until (zero values mean unbounded). A non-positive limit defaults
// to 100 rows.
func (db *DB) QueryFrames(since, until time.Time, limit int) ([]StoredFrame, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT frame_id, source, received_at, point_count, error_count FROM frames`
	conds, args := timeConds(since, until, "received_at")
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY received_at DESC, frame_id LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer rows.Close()

	var frames []StoredFrame
	for rows.Next() {
		var f StoredFrame
		var receivedAt int64
		if err := rows.Scan(&f.FrameID, &f.Source, &receivedAt, &f.PointCount, &f.ErrorCount); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		f.ReceivedAt = time.UnixMilli(receivedAt).UTC()
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// GetFrame returns one stored frame by ID, or nil when no such frame
// exists.
func (db *DB) GetFrame(frameID string) (*StoredFrame, error) {
	var f StoredFrame
	var receivedAt int64
	err := db.QueryRow(
		`SELECT frame_id, source, received_at, point_count, error_count
		 FROM frames WHERE frame_id = ?`,
		frameID,
	).Scan(&f.FrameID, &f.Source, &receivedAt, &f.PointCount, &f.ErrorCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query frame %s: %w", frameID, err)
	}
	f.ReceivedAt = time.UnixMilli(receivedAt).UTC()
	return &f, nil
}

// FramePoints returns the data points of a single stored frame in their
// original line order.
func (db *DB) FramePoints(frameID string) ([]StoredPoint, error) {
	rows, err := db.Query(
		`SELECT dp.frame_id, f.source, f.received_at, dp.code, dp.record_type,
		        dp.name, dp.raw_value, dp.value, dp.text_value, dp.unit
		 FROM data_points dp
		 JOIN frames f ON f.frame_id = dp.frame_id
		 WHERE dp.frame_id = ?
		 ORDER BY dp.rowid`,
		frameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query frame points: %w", err)
	}
	defer rows.Close()
	return scanPoints(rows)
}

// FrameErrors returns the decode warnings recorded for a stored frame.
func (db *DB) FrameErrors(frameID string) ([]string, error) {
	rows, err := db.Query(
		`SELECT message FROM decode_errors WHERE frame_id = ? ORDER BY seq`,
		frameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query decode errors: %w", err)
	}
	defer rows.Close()

	var msgs []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, fmt.Errorf("failed to scan decode error: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

// QueryDataPoints returns stored data points newest first, optionally
// filtered by symbol codes and bounded by since/until. A non-positive
// limit defaults to 1000 rows.
func (db *DB) QueryDataPoints(codes []string, since, until time.Time, limit int) ([]StoredPoint, error) {
	if limit <= 0 {
		limit = 1000
	}

	query := `SELECT dp.frame_id, f.source, f.received_at, dp.code, dp.record_type,
	                 dp.name, dp.raw_value, dp.value, dp.text_value, dp.unit
	          FROM data_points dp
	          JOIN frames f ON f.frame_id = dp.frame_id`
	conds, args := timeConds(since, until, "f.received_at")
	if len(codes) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(codes)), ",")
		conds = append(conds, "dp.code IN ("+placeholders+")")
		for _, code := range codes {
			args = append(args, code)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY f.received_at DESC, dp.rowid LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query data points: %w", err)
	}
	defer rows.Close()
	return scanPoints(rows)
}

// AvailableSymbols lists the distinct symbol codes in the stored history
// with sample counts and first/last seen times.
func (db *DB) AvailableSymbols() ([]SymbolSummary, error) {
	rows, err := db.Query(
		`SELECT dp.code, dp.name, dp.unit, COUNT(*),
		        MIN(f.received_at), MAX(f.received_at)
		 FROM data_points dp
		 JOIN frames f ON f.frame_id = dp.frame_id
		 GROUP BY dp.code, dp.name, dp.unit
		 ORDER BY dp.code`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []SymbolSummary
	for rows.Next() {
		var s SymbolSummary
		var first, last int64
		if err := rows.Scan(&s.Code, &s.Name, &s.Unit, &s.Count, &first, &last); err != nil {
			return nil, fmt.Errorf("failed to scan symbol summary: %w", err)
		}
		s.FirstSeen = time.UnixMilli(first).UTC()
		s.LastSeen = time.UnixMilli(last).UTC()
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}

// TimeRange reports the earliest and latest frame times and the total
// frame count. An empty database returns zero times and a zero count.
func (db *DB) TimeRange() (first, last time.Time, count int64, err error) {
	var minAt, maxAt *int64
	err = db.QueryRow(`SELECT MIN(received_at), MAX(received_at), COUNT(*) FROM frames`).
		Scan(&minAt, &maxAt, &count)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("failed to query time range: %w", err)
	}
	if minAt != nil {
		first = time.UnixMilli(*minAt).UTC()
	}
	if maxAt != nil {
		last = time.UnixMilli(*maxAt).UTC()
	}
	return first, last, count, nil
}

func timeConds(since, until time.Time, column string) ([]string, []any) {
	var conds []string
	var args []any
	if !since.IsZero() {
		conds = append(conds, column+" >= ?")
		args = append(args, since.UnixMilli())
	}
	if !until.IsZero() {
		conds = append(conds, column+" <= ?")
		args = append(args, until.UnixMilli())
	}
	return conds, args
}

func scanPoints(rows *sql.Rows) ([]StoredPoint, error) {
	var points []StoredPoint
	for rows.Next() {
		var p StoredPoint
		var receivedAt int64
		if err := rows.Scan(&p.FrameID, &p.Source, &receivedAt, &p.Code, &p.RecordType,
			&p.Name, &p.RawValue, &p.Value, &p.Text, &p.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan data point: %w", err)
		}
		p.ReceivedAt = time.UnixMilli(receivedAt).UTC()
		points = append(points, p)
	}
	return points, rows.Err()
}
