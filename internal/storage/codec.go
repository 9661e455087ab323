package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/username/attendance-tracker/internal/attendance"
	"github.com/username/attendance-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// UnnamedWorker replaces a missing or malformed worker name on load
const UnnamedWorker = "Unnamed"

// ErrCorruptState is returned when the stored blob is not a JSON array
var ErrCorruptState = errors.New("stored roster is not a JSON array")

// workerDoc is the persisted form of a worker:
// {"name": "...", "records": {"YYYY-MM-DD": {"status": "Present", "time": "HH:MM"}}}
type workerDoc struct {
	Name    string               `json:"name"`
	Records map[string]recordDoc `json:"records"`
}

type recordDoc struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// Encode serializes a roster in worker order
func Encode(roster attendance.Roster) ([]byte, error) {
	docs := make([]workerDoc, 0, roster.Len())
	for _, w := range roster.Workers() {
		doc := workerDoc{
			Name:    w.Name(),
			Records: make(map[string]recordDoc, w.RecordCount()),
		}
		for date, rec := range w.Records() {
			doc.Records[date.String()] = recordDoc{
				Status: rec.Status.String(),
				Time:   rec.Time.String(),
			}
		}
		docs = append(docs, doc)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}
	return data, nil
}

// Decode parses a stored roster. An empty blob is an empty roster. Malformed
// entries are repaired instead of failing the load: a bad worker becomes
// "Unnamed" with no records, a record with a bad date is dropped, an unknown
// status reads as Absent and a bad time as 09:00.
func Decode(data []byte, logger *zap.Logger) (attendance.Roster, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return attendance.NewRoster(), nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return attendance.Roster{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	workers := make([]attendance.Worker, 0, len(entries))
	for i, entry := range entries {
		workers = append(workers, decodeWorker(i, entry, logger))
	}

	return attendance.NewRoster(workers...), nil
}

func decodeWorker(index int, entry json.RawMessage, logger *zap.Logger) attendance.Worker {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		logger.Warn("Malformed worker entry, replacing",
			zap.Int("index", index),
			zap.Error(err))
		return attendance.NewWorker(UnnamedWorker, nil)
	}

	var name string
	if err := json.Unmarshal(fields["name"], &name); err == nil {
		name = strings.TrimSpace(name)
	}
	if name == "" {
		logger.Warn("Worker entry has no usable name",
			zap.Int("index", index))
		name = UnnamedWorker
	}

	var rawRecords map[string]json.RawMessage
	if err := json.Unmarshal(fields["records"], &rawRecords); err != nil {
		logger.Warn("Worker records malformed, dropping",
			zap.Int("index", index),
			zap.String("name", name),
			zap.Error(err))
		rawRecords = nil
	}

	records := make(map[dateutil.Date]attendance.Record, len(rawRecords))
	for key, raw := range rawRecords {
		date, err := dateutil.ParseDate(key)
		if err != nil {
			logger.Warn("Dropping record with invalid date",
				zap.String("name", name),
				zap.String("date", key))
			continue
		}
		records[date] = decodeRecord(raw)
	}

	return attendance.NewWorker(name, records)
}

func decodeRecord(raw json.RawMessage) attendance.Record {
	rec := attendance.NewRecord()

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rec
	}

	if s, ok := fields["status"].(string); ok {
		if status, err := attendance.ParseStatus(s); err == nil {
			rec.Status = status
		}
	}
	if s, ok := fields["time"].(string); ok {
		if at, err := dateutil.ParseClock(s); err == nil {
			rec.Time = at
		}
	}

	return rec
}
