package stockpile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Collection file names under the data directory. Each holds one JSONL list.
const (
	internalFile = "internal.jsonl"
	externalFile = "external.jsonl"
	historyFile  = "history.jsonl"
)

// FileRepository persists each collection as a JSONL file under a directory.
// A missing file is an empty collection; any other I/O or decode fault
// surfaces as an error for the ledger to wrap.
type FileRepository struct {
	dir string
}

// NewFileRepository returns a repository rooted at dir. The directory is
// created on the first write, not here.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Dir returns the data directory this repository reads and writes.
func (r *FileRepository) Dir() string { return r.dir }

func (r *FileRepository) itemsPath(t StockType) string {
	if t == Internal {
		return filepath.Join(r.dir, internalFile)
	}
	return filepath.Join(r.dir, externalFile)
}

func (r *FileRepository) LoadItems(t StockType) ([]StockItem, error) {
	f, err := os.Open(r.itemsPath(t))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s stock file: %w", t, err)
	}
	defer f.Close()
	return DecodeItems(f)
}

func (r *FileRepository) SaveItems(t StockType, items []StockItem) error {
	return r.writeFile(r.itemsPath(t), func(f *os.File) error {
		return EncodeItems(f, items)
	})
}

func (r *FileRepository) LoadHistory() ([]IssueRecord, error) {
	f, err := os.Open(filepath.Join(r.dir, historyFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open issue history file: %w", err)
	}
	defer f.Close()
	return DecodeHistory(f)
}

func (r *FileRepository) SaveHistory(records []IssueRecord) error {
	return r.writeFile(filepath.Join(r.dir, historyFile), func(f *os.File) error {
		return EncodeHistory(f, records)
	})
}

// writeFile replaces a collection file through a temporary file and rename,
// so a failed encode never truncates the previous contents.
func (r *FileRepository) writeFile(path string, encode func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create data directory for %q: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file for %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}

var _ Repository = (*FileRepository)(nil)
