package logtail

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
)

// MaxLineBytes bounds how much of a single log line is kept.
const MaxLineBytes = 1024 * 1024

// Read returns at most maxLines from the end of the file at path. A missing
// file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "open log")
	}
	defer file.Close()

	ring := make([]string, maxLines)
	reader := bufio.NewReaderSize(file, 64*1024)
	count := 0
	idx := 0
	for {
		line, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read log")
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// readLine returns the next line without its terminator. Lines longer than
// MaxLineBytes are cut at that length and the rest is discarded.
func readLine(r *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if room := MaxLineBytes - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			return string(buf), nil
		}
	}
}

// Entry is one parsed JSON log line.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	// Fields holds every other key rendered as text, sorted by key.
	Fields []Field
	// Raw is set when the line was not JSON.
	Raw string
}

// Field is a single key/value pair from a log line.
type Field struct {
	Key   string
	Value string
}

// Parse decodes lines written by zerolog's JSON writer. Lines that are not
// JSON objects are kept verbatim in Entry.Raw.
func Parse(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, ParseLine(line))
	}
	return entries
}

// ParseLine decodes a single log line.
func ParseLine(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Raw: line}
	}

	var e Entry
	if v, ok := raw[zerolog.TimestampFieldName].(string); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			e.Time = ts
		}
	}
	if v, ok := raw[zerolog.LevelFieldName].(string); ok {
		e.Level = v
	}
	if v, ok := raw[zerolog.MessageFieldName].(string); ok {
		e.Message = v
	}
	delete(raw, zerolog.TimestampFieldName)
	delete(raw, zerolog.LevelFieldName)
	delete(raw, zerolog.MessageFieldName)

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Fields = append(e.Fields, Field{Key: k, Value: fieldText(raw[k])})
	}
	return e
}

func fieldText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// String renders the entry as "15:04:05 LEVEL message key=value ...".
func (e Entry) String() string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(strings.ToUpper(e.Level))
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	for _, f := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}
