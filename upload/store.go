package upload

import (
	"io"
	"net/url"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Asset describes a stored upload
type Asset struct {
	ID        uuid.UUID `json:"id"`
	Extension string    `json:"extension"`
	Category  Category  `json:"category"`
	// StoragePath is the path of the file relative to the upload root
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
}

// Store persists uploads below a root directory, one folder per category.
// It is safe for concurrent use: every upload gets a fresh random name and
// files are created exclusively.
type Store struct {
	fs        afero.Fs
	publicURL string
	maxSize   int64
}

// NewStore creates a Store on fs. publicURL is the URL under which the
// root of fs is served, e.g. "/uploads" or "https://cdn.example.com/uploads".
// A maxSize of zero means uploads are not limited.
func NewStore(fs afero.Fs, publicURL string, maxSize int64) (*Store, error) {
	if _, err := url.Parse(publicURL); err != nil {
		return nil, errors.Wrap(err, "invalid public upload url")
	}
	if maxSize < 0 {
		return nil, errors.Errorf("maximum upload size must not be negative, got %d", maxSize)
	}
	for _, c := range Categories {
		if err := fs.MkdirAll(c.Dir(), 0o755); err != nil {
			return nil, errors.Wrapf(err, "could not create upload folder '%s'", c.Dir())
		}
	}
	return &Store{
		fs:        fs,
		publicURL: publicURL,
		maxSize:   maxSize,
	}, nil
}

// NewOSStore creates a Store writing below the directory root on the local
// filesystem, creating it if needed.
func NewOSStore(root, publicURL string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create upload directory '%s'", root)
	}
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), root), publicURL, maxSize)
}

// Save classifies filename and stores content under a new random name that
// keeps only the extension of filename. Unsupported files are rejected
// before anything is written, and a failed write leaves no file behind.
func (s *Store) Save(filename string, content io.Reader) (*Asset, error) {
	if filename == "" || content == nil {
		return nil, ErrNoFileProvided
	}
	category, ext, err := Classify(filename)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, &StorageError{Path: category.Dir(), Err: err}
	}
	name := id.String() + ext
	storagePath := path.Join(category.Dir(), name)
	publicURL, err := url.JoinPath(s.publicURL, category.Dir(), name)
	if err != nil {
		return nil, &StorageError{Path: storagePath, Err: err}
	}

	if err = s.write(storagePath, content); err != nil {
		if removeErr := s.fs.Remove(storagePath); removeErr != nil && !os.IsNotExist(removeErr) {
			log.WithError(removeErr).WithField("path", storagePath).Error("could not remove partial upload")
		}
		if errors.Is(err, ErrFileTooLarge) {
			return nil, ErrFileTooLarge
		}
		return nil, &StorageError{Path: storagePath, Err: err}
	}
	log.WithFields(
		log.Fields{
			"path":     storagePath,
			"category": category,
		},
	).Info("stored upload")
	return &Asset{
		ID:          id,
		Extension:   ext,
		Category:    category,
		StoragePath: storagePath,
		PublicURL:   publicURL,
	}, nil
}

func (s *Store) write(storagePath string, content io.Reader) error {
	f, err := s.fs.OpenFile(storagePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	src := content
	if s.maxSize > 0 {
		src = io.LimitReader(content, s.maxSize+1)
	}
	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	if s.maxSize > 0 && n > s.maxSize {
		return ErrFileTooLarge
	}
	return nil
}
