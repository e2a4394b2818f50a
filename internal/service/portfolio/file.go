package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File names of the persisted collections inside the config directory.
const (
	ConfigFile   = "portfolio.json"
	ProjectsFile = "projects.json"
	ServicesFile = "services.json"
)

// FileStore implements Store with one JSON file per collection.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the config directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, unavailable("create config dir", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Config(_ context.Context) (*Config, error) {
	return s.readConfig()
}

func (s *FileStore) UpdateConfig(_ context.Context, patch Patch) (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.readConfig()
	if err != nil {
		return nil, err
	}
	base := DefaultConfig()
	if current != nil {
		base = *current
	}
	merged := patch.Apply(base)

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return nil, unavailable("encode config", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, ConfigFile), data); err != nil {
		return nil, unavailable("write config", err)
	}
	return &merged, nil
}

func (s *FileStore) Projects(_ context.Context) ([]Project, error) {
	projects := []Project{}
	if err := s.readCollection(ProjectsFile, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}

func (s *FileStore) Project(ctx context.Context, id int) (*Project, error) {
	projects, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return findProject(projects, id)
}

func (s *FileStore) Services(_ context.Context) ([]Service, error) {
	services := []Service{}
	if err := s.readCollection(ServicesFile, &services); err != nil {
		return nil, err
	}
	if services == nil {
		services = []Service{}
	}
	return services, nil
}

func (s *FileStore) Service(ctx context.Context, id int) (*Service, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}
	return findService(services, id)
}

// readConfig returns (nil, nil) when the document has never been written.
func (s *FileStore) readConfig() (*Config, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("read config", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, unavailable("decode config", err)
	}
	if c.SocialLinks == nil {
		c.SocialLinks = []SocialLink{}
	}
	return &c, nil
}

// readCollection leaves dst untouched when the file does not exist.
func (s *FileStore) readCollection(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return unavailable("read "+name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return unavailable("decode "+name, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}

// Compile-time interface check
var _ Store = (*FileStore)(nil)
