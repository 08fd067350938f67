package buildinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/oshokin/gitver/internal/domain/version"
)

const (
	// DefaultFilename is the build metadata file written when no path is given.
	DefaultFilename = "build-info.yaml"

	// DefaultFileMode is the permission of the written file. It is a build artifact, readable by all.
	DefaultFileMode = 0o644
)

// Document is the on-disk build metadata record.
type Document struct {
	Version     string    `yaml:"version"`
	Tier        string    `yaml:"tier"`
	Tag         string    `yaml:"tag,omitempty"`
	Commits     string    `yaml:"commits,omitempty"`
	SHA         string    `yaml:"sha,omitempty"`
	Dirty       bool      `yaml:"dirty"`
	Branch      string    `yaml:"branch,omitempty"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

// NewDocument builds a document from a resolution, stamped with generatedAt in UTC.
func NewDocument(res *domain.Resolution, generatedAt time.Time) *Document {
	return &Document{
		Version:     res.Version,
		Tier:        res.Tier.String(),
		Tag:         res.Tag,
		Commits:     res.Commits,
		SHA:         res.SHA,
		Dirty:       res.Dirty,
		Branch:      res.Branch,
		GeneratedAt: generatedAt.UTC().Truncate(time.Second),
	}
}

// Repository defines persistence operations for build metadata.
type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FileRepository persists a Document to a YAML file.
type FileRepository struct {
	// path is the filesystem location of the YAML file.
	path string
	// mu serializes access to the file.
	mu sync.Mutex
}

var (
	// ErrNotFound is returned when the build metadata file does not exist.
	ErrNotFound = errors.New("build info not found")
	// errDocumentIsNotSet is returned when saving a nil document.
	errDocumentIsNotSet = errors.New("build info document is not set")
)

// NewFileRepository creates a repository for the file at path.
// An empty path means DefaultFilename.
func NewFileRepository(path string) *FileRepository {
	if path == "" {
		path = DefaultFilename
	}

	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the document from disk.
func (r *FileRepository) Load(_ context.Context) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read build info: %w", err)
	}

	var doc Document
	if err = yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode build info: %w", err)
	}

	return &doc, nil
}

// Save writes the document to disk, creating parent directories as needed.
func (r *FileRepository) Save(_ context.Context, doc *Document) error {
	if doc == nil {
		return errDocumentIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode build info: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create build info directory: %w", err)
	}

	if err = os.WriteFile(r.path, data, DefaultFileMode); err != nil {
		return fmt.Errorf("write build info: %w", err)
	}

	return nil
}
