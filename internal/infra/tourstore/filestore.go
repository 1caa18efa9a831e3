package tourstore

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/ports"
)

// FileStore keeps the whole catalog in a single structured-text file.
type FileStore struct {
	path   string
	format Format
	log    *slog.Logger

	// set when Load found undecodable data; the next Save copies it aside first
	keepCorrupt bool
}

type Option func(*FileStore)

// WithFormat overrides the codec picked from the file extension.
func WithFormat(f Format) Option {
	return func(s *FileStore) {
		if f != "" {
			s.format = f
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.log = l
		}
	}
}

func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:   filepath.Clean(path),
		format: FormatForPath(path),
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.TourStore = (*FileStore)(nil)

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Format() Format { return s.format }

// Save writes the full ordered sequence. The write goes to a temp file in the
// same directory which is then renamed over the store, so a failed save leaves
// the previous contents intact. If the last Load found the store corrupt, its
// bytes are copied to <store>.corrupt before being replaced.
func (s *FileStore) Save(tours []domain.Tour) error {
	b, err := encode(s.format, tours)
	if err != nil {
		return &domain.OpError{
			Op:   "tourstore.encode",
			Kind: domain.KindPersist,
			Path: s.path,
			Err:  err,
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "tourstore.mkdir",
			Kind: domain.KindPersist,
			Path: dir,
			Err:  err,
		}
	}

	tmp, err := writeTemp(dir, filepath.Base(s.path), b)
	if err != nil {
		return &domain.OpError{
			Op:   "tourstore.write",
			Kind: domain.KindPersist,
			Path: tmp,
			Err:  err,
		}
	}

	if s.keepCorrupt {
		backup, err := s.backupCorrupt()
		if err != nil {
			_ = os.Remove(tmp)
			return &domain.OpError{
				Op:   "tourstore.backup",
				Kind: domain.KindPersist,
				Path: backup,
				Err:  err,
			}
		}
		s.keepCorrupt = false
		if backup != "" {
			s.log.Warn("tourstore.corrupt.kept", "path", s.path, "backup", backup)
		}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "tourstore.rename",
			Kind: domain.KindPersist,
			Path: s.path,
			Err:  err,
		}
	}

	s.log.Info("tourstore.save.ok", "path", s.path, "format", string(s.format), "tours", len(tours))
	return nil
}

// backupCorrupt copies the current store to the first free <store>.corrupt[.N].
// It returns "" when the store is already gone.
func (s *FileStore) backupCorrupt() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return s.path, err
	}

	backup := s.path + ".corrupt"
	for n := 1; ; n++ {
		_, err := os.Stat(backup)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return backup, err
		}
		backup = s.path + ".corrupt." + strconv.Itoa(n)
	}
	return backup, os.WriteFile(backup, b, 0o644)
}

func writeTemp(dir, base string, b []byte) (path string, err error) {
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return filepath.Join(dir, base+".tmp"), err
	}
	path = f.Name()

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = f.Write(b); err != nil {
		return path, err
	}
	if err = f.Chmod(0o644); err != nil {
		return path, err
	}
	return path, f.Sync()
}

// Load reads the store. A missing file is the first-run state (LoadNotFound);
// data that cannot be decoded yields LoadCorrupt with an empty sequence.
// Only I/O failures other than "not exist" are returned as errors.
func (s *FileStore) Load() (domain.LoadResult, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.keepCorrupt = false
			s.log.Info("tourstore.load.not_found", "path", s.path)
			return domain.LoadResult{Tours: []domain.Tour{}, Status: domain.LoadNotFound}, nil
		}
		return domain.LoadResult{Tours: []domain.Tour{}}, &domain.OpError{
			Op:   "tourstore.read",
			Kind: domain.KindPersist,
			Path: s.path,
			Err:  err,
		}
	}

	if len(bytes.TrimSpace(b)) == 0 {
		s.keepCorrupt = false
		return domain.LoadResult{Tours: []domain.Tour{}, Status: domain.LoadOK}, nil
	}

	tours, err := decode(s.format, b)
	if err != nil {
		cause := &domain.OpError{
			Op:   "tourstore.decode",
			Kind: domain.KindCorrupt,
			Path: s.path,
			Err:  errors.Join(domain.ErrCorrupt, err),
		}
		s.keepCorrupt = true
		s.log.Warn("tourstore.load.corrupt", "path", s.path, "format", string(s.format), "err", err)
		return domain.LoadResult{Tours: []domain.Tour{}, Status: domain.LoadCorrupt, Cause: cause}, nil
	}

	s.keepCorrupt = false
	s.log.Info("tourstore.load.ok", "path", s.path, "tours", len(tours))
	return domain.LoadResult{Tours: tours, Status: domain.LoadOK}, nil
}
