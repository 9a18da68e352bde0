package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Log is an append-only file of msgpack encoded records.
type Log[R any] struct {
	mu   sync.Mutex
	file *os.File
}

// OpenLog opens the log at path, creating the file and its directory if needed.
func OpenLog[R any](path string) (*Log[R], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	// Open the file in append mode, create if needed
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	return &Log[R]{file: file}, nil
}

// Append writes a record to the end of the log.
func (l *Log[R]) Append(record R) error {
	data, err := msgpack.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.file.Write(data)
	return err
}

// Load reads every record in the log, oldest first.
func (l *Log[R]) Load() ([]R, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.file.Name())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []R
	dec := msgpack.NewDecoder(bufio.NewReader(file))
	for {
		var record R
		if err := dec.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return records, fmt.Errorf("decode record %d: %w", len(records), err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Path returns the file backing the log.
func (l *Log[R]) Path() string {
	return l.file.Name()
}

// Close closes the log file.
func (l *Log[R]) Close() error {
	return l.file.Close()
}
