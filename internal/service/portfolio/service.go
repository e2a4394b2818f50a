package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service errors
var (
	ErrValidation         = errors.New("invalid configuration")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotFound           = errors.New("not found")
)

// FieldIssue describes a single rejected field of an update payload.
type FieldIssue struct {
	Field   string
	Message string
}

// ValidationError lists every field of a payload that failed validation.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fields returns the names of the rejected fields.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		out = append(out, issue.Field)
	}
	return out
}

// Store defines the storage capabilities of the site backend.
//
// Config returns (nil, nil) when no document has been written yet. Storage
// failures, including a corrupt persisted document, are reported as
// ErrStorageUnavailable and never replaced by default values.
//
// UpdateConfig persists before returning, so a following Config call observes
// the returned document. Implementations serialize concurrent updates.
type Store interface {
	Config(ctx context.Context) (*Config, error)
	UpdateConfig(ctx context.Context, patch Patch) (*Config, error)
	Projects(ctx context.Context) ([]Project, error)
	Project(ctx context.Context, id int) (*Project, error)
	Services(ctx context.Context) ([]Service, error)
	Service(ctx context.Context, id int) (*Service, error)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

func findProject(projects []Project, id int) (*Project, error) {
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
}

func findService(services []Service, id int) (*Service, error) {
	for i := range services {
		if services[i].ID == id {
			s := services[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %d: %w", id, ErrNotFound)
}
