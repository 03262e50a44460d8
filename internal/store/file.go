package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// Store is the external record store the registry persists finalized events to.
type Store interface {
	Append(path string, r Record) error
	Load(path string) ([]Record, []error)
}

// FileStore keeps one record per line in an append-only text file.
type FileStore struct {
	mu sync.Mutex
}

func NewFileStore() *FileStore {
	return &FileStore{}
}

// Append writes r as a new line at the end of the file, creating it if needed.
// A torn last line is closed first so it stays a separate, skippable record.
func (s *FileStore) Append(path string, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	line := Encode(r) + "\n"
	torn, err := endsMidLine(f)
	if err != nil {
		return err
	}
	if torn {
		line = "\n" + line
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync record file: %w", err)
	}
	return nil
}

func endsMidLine(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat record file: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("failed to read record file: %w", err)
	}
	return last[0] != '\n', nil
}

// Load decodes every non-empty line of the file. Lines that cannot be decoded
// are skipped and reported as *CorruptRecordError; the file itself is never
// modified. A missing file is an empty store.
func (s *FileStore) Load(path string) ([]Record, []error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("failed to open record file: %w", err)}
	}
	defer f.Close()

	var (
		records []Record
		errs    []error
	)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		r, err := Decode(raw)
		if err != nil {
			errs = append(errs, &CorruptRecordError{Line: line, Raw: raw, Err: err})
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("failed to read record file: %w", err))
	}

	return records, errs
}
