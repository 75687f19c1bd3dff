// Package replay persists play sessions as plain-text move logs and
// feeds them back as input events. One line per effective move, in the
// form "<key>:<score>", e.g. "a:24". Together with a fixed RNG seed a
// log reproduces a session exactly.
package replay

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/term2048/internal/core"
)

// Writer appends one record per effective move to a log file. It is
// write-only: a recording is consumed only by a later playback run.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

// Create opens (truncating) a record file at the given path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create record file: %w", err)
	}
	return &Writer{file: f, buf: bufio.NewWriter(f)}, nil
}

// Append writes one (key, score-after-move) record.
func (w *Writer) Append(key byte, score int) error {
	if _, err := fmt.Fprintf(w.buf, "%c:%d\n", key, score); err != nil {
		return fmt.Errorf("replay: cannot append record: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("replay: cannot flush record file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("replay: cannot close record file: %w", err)
	}
	return nil
}

// Record is one parsed replay line.
type Record struct {
	Key   byte
	Score int
}

// Reader replays a recorded session as a sequence of input events.
// It satisfies the session's event source contract: an exhausted file,
// a blank line or an unrecognizable key all yield Quit, so playback
// always terminates.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// Open opens a playback file at the given path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open playback file: %w", err)
	}
	return &Reader{file: f, scanner: bufio.NewScanner(f)}, nil
}

// ReadEvent returns the event encoded on the next line.
func (r *Reader) ReadEvent() core.Event {
	rec, ok := r.next()
	if !ok {
		return core.EventQuit
	}
	ev := core.EventForKey(rec.Key)
	if ev == core.EventUnknown {
		return core.EventQuit
	}
	return ev
}

// next parses the next line into a Record. The score field is optional
// on read; only the leading key character drives playback.
func (r *Reader) next() (Record, bool) {
	if !r.scanner.Scan() {
		return Record{}, false
	}
	line := strings.TrimLeft(r.scanner.Text(), " \t")
	if line == "" {
		return Record{}, false
	}

	rec := Record{Key: line[0]}
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		if score, err := strconv.Atoi(strings.TrimSpace(line[idx+1:])); err == nil {
			rec.Score = score
		}
	}
	return rec, true
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("replay: cannot close playback file: %w", err)
	}
	return nil
}

// ReadAll parses a whole log into records, for score verification.
func ReadAll(path string) ([]Record, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []Record
	for {
		rec, ok := r.next()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay: reading playback file: %w", err)
	}
	return records, nil
}
