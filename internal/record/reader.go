package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// maxLineBytes bounds a single NDJSON line. Dataset entries with embedded
// play metadata can run to a few megabytes.
const maxLineBytes = 16 * 1024 * 1024

// Read decodes NDJSON records from r. Malformed lines are skipped with a
// warning and contribute no record; blank lines are ignored. Numbers decode
// as json.Number so large IDs survive a round trip verbatim.
func Read(r io.Reader, logger *slog.Logger) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text))
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			logger.Warn("skipping invalid JSON entry", "line", line, "error", err)
			continue
		}
		records = append(records, New(raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return records, nil
}

// ReadFile opens path and decodes its records. An unreadable file is a
// run-fatal precondition, returned before any work is scheduled.
func ReadFile(path string, logger *slog.Logger) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, logger)
}
