package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, 0, count)
	start := 0
	if count == maxLines {
		start = next
	}
	for i := 0; i < count; i++ {
		lines = append(lines, ring[(start+i)%maxLines])
	}
	return lines, nil
}

// Entry is one decoded log record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]any
	Raw     string
}

// Parse decodes a zerolog JSON line. Lines that do not decode are returned
// with only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		entry.Message = line
		return entry
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
		entry.Message = line
		return entry
	}

	if v, ok := record["level"].(string); ok {
		entry.Level = v
		delete(record, "level")
	}
	if v, ok := record["message"].(string); ok {
		entry.Message = v
		delete(record, "message")
	}
	if v, ok := record["time"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			entry.Time = ts
			delete(record, "time")
		}
	}
	if len(record) > 0 {
		entry.Fields = record
	}
	return entry
}

// Tail reads and decodes at most maxLines records from the end of path.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Columns is an Entry split into the display columns of the log viewer.
// Empty columns are omitted when rendering.
type Columns struct {
	Time    string // 15:04:05 in local time
	Level   string // three-letter tag
	Message string
	Fields  string // key=value pairs sorted by key
}

// Columns splits e for display. ok is false for lines that were not decoded,
// which should be shown as Raw.
func (e Entry) Columns() (cols Columns, ok bool) {
	if e.Level == "" && e.Time.IsZero() && e.Fields == nil {
		return Columns{}, false
	}
	if !e.Time.IsZero() {
		cols.Time = e.Time.Local().Format("15:04:05")
	}
	cols.Level = LevelTag(e.Level)
	cols.Message = e.Message
	cols.Fields = e.fieldString()
	return cols, true
}

func (e Entry) fieldString() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Fields[k]))
	}
	return strings.Join(parts, " ")
}

// LevelTag returns the three-letter tag used for level in formatted output.
func LevelTag(level string) string {
	switch strings.ToLower(level) {
	case "trace":
		return "TRC"
	case "debug":
		return "DBG"
	case "info":
		return "INF"
	case "warn", "warning":
		return "WRN"
	case "error":
		return "ERR"
	case "fatal":
		return "FTL"
	case "panic":
		return "PNC"
	default:
		return "???"
	}
}
