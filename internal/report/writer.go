package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Writer receives reports as documents finish.
//
// Implementations must tolerate being called once per document, in order,
// from a single goroutine.
type Writer interface {
	// Write records one report.
	Write(r *Report) error

	// Close flushes any pending writes and closes the writer.
	Close() error
}

// NopWriter discards all reports. Used when report output is disabled.
type NopWriter struct{}

var _ Writer = (*NopWriter)(nil)

func (NopWriter) Write(*Report) error { return nil }
func (NopWriter) Close() error        { return nil }

// MultiWriter writes to multiple report writers. If any writer fails, the
// write fails.
type MultiWriter struct {
	writers []Writer
}

var _ Writer = (*MultiWriter)(nil)

// NewMultiWriter creates a writer that writes to all provided writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (m *MultiWriter) Write(r *Report) error {
	for _, w := range m.writers {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiWriter) Close() error {
	var lastErr error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// FileWriter appends reports to a file as JSON lines, syncing after each
// write so a crashed run still leaves the completed documents on disk.
type FileWriter struct {
	mu sync.Mutex
	f  *os.File
}

var _ Writer = (*FileWriter)(nil)

// NewFileWriter opens (or creates) a JSONL report file for appending.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	return &FileWriter{f: f}, nil
}

func (w *FileWriter) Write(r *Report) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	line = append(line, '\n')
	if _, err := w.f.Write(line); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return w.f.Sync()
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
