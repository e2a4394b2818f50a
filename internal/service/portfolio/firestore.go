package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	configCollection   = "portfolio"
	configDocument     = "config"
	projectsCollection = "projects"
	servicesCollection = "services"
)

// firestoreConfig maps to the Firestore document structure.
type firestoreConfig struct {
	Name         string                `firestore:"name"`
	Title        string                `firestore:"title"`
	About        string                `firestore:"about"`
	Email        string                `firestore:"email"`
	Phone        *string               `firestore:"phone,omitempty"`
	Location     *string               `firestore:"location,omitempty"`
	ProfileImage *string               `firestore:"profile_image,omitempty"`
	Theme        string                `firestore:"theme"`
	Skills       firestoreSkills       `firestore:"skills"`
	Stats        firestoreStats        `firestore:"stats"`
	SocialLinks  []firestoreSocialLink `firestore:"social_links"`
}

type firestoreSkills struct {
	Primary   string `firestore:"primary"`
	Secondary string `firestore:"secondary"`
	Tertiary  string `firestore:"tertiary"`
	Framework string `firestore:"framework"`
	Other     string `firestore:"other"`
	Database  string `firestore:"database"`
}

type firestoreStats struct {
	Projects     string `firestore:"projects"`
	Satisfaction string `firestore:"satisfaction"`
	Experience   string `firestore:"experience"`
}

type firestoreSocialLink struct {
	Platform string `firestore:"platform"`
	URL      string `firestore:"url"`
	Icon     string `firestore:"icon"`
}

type firestoreProject struct {
	ID           int      `firestore:"id"`
	Title        string   `firestore:"title"`
	Description  string   `firestore:"description"`
	Image        string   `firestore:"image"`
	Technologies []string `firestore:"technologies"`
	LiveURL      string   `firestore:"live_url"`
	GithubURL    string   `firestore:"github_url"`
	Featured     bool     `firestore:"featured"`
}

type firestoreService struct {
	ID          int      `firestore:"id"`
	Title       string   `firestore:"title"`
	Description string   `firestore:"description"`
	Icon        string   `firestore:"icon"`
	Features    []string `firestore:"features"`
}

// FirestoreStore implements Store using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) configRef() *firestore.DocumentRef {
	return s.client.Collection(configCollection).Doc(configDocument)
}

// Config reads the singleton document.
func (s *FirestoreStore) Config(ctx context.Context) (*Config, error) {
	doc, err := s.configRef().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, unavailable("read config", err)
	}

	var fc firestoreConfig
	if err := doc.DataTo(&fc); err != nil {
		return nil, unavailable("decode config", err)
	}
	c, err := fc.toConfig()
	if err != nil {
		return nil, unavailable("decode config", err)
	}
	return &c, nil
}

// UpdateConfig merges the patch inside a transaction so concurrent writers
// cannot lose each other's changes.
func (s *FirestoreStore) UpdateConfig(ctx context.Context, patch Patch) (*Config, error) {
	docRef := s.configRef()

	var result *Config

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		base := DefaultConfig()

		doc, err := tx.Get(docRef)
		switch {
		case err == nil:
			var fc firestoreConfig
			if err := doc.DataTo(&fc); err != nil {
				return unavailable("decode config", err)
			}
			if base, err = fc.toConfig(); err != nil {
				return unavailable("decode config", err)
			}
		case status.Code(err) != codes.NotFound:
			return err
		}

		merged := patch.Apply(base)
		if err := tx.Set(docRef, toFirestoreConfig(merged)); err != nil {
			return err
		}
		result = &merged
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return nil, err
		}
		return nil, unavailable("update config", err)
	}
	return result, nil
}

// Projects lists the project catalog ordered by id.
func (s *FirestoreStore) Projects(ctx context.Context) ([]Project, error) {
	docs, err := s.client.Collection(projectsCollection).OrderBy("id", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, unavailable("list projects", err)
	}
	projects := make([]Project, 0, len(docs))
	for _, doc := range docs {
		var fp firestoreProject
		if err := doc.DataTo(&fp); err != nil {
			return nil, unavailable("decode project "+doc.Ref.ID, err)
		}
		projects = append(projects, fp.toProject())
	}
	return projects, nil
}

// Project looks up a single project by its numeric id.
func (s *FirestoreStore) Project(ctx context.Context, id int) (*Project, error) {
	doc, err := s.client.Collection(projectsCollection).Doc(strconv.Itoa(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return nil, unavailable("get project", err)
	}
	var fp firestoreProject
	if err := doc.DataTo(&fp); err != nil {
		return nil, unavailable("decode project", err)
	}
	p := fp.toProject()
	return &p, nil
}

// Services lists the service catalog ordered by id.
func (s *FirestoreStore) Services(ctx context.Context) ([]Service, error) {
	docs, err := s.client.Collection(servicesCollection).OrderBy("id", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, unavailable("list services", err)
	}
	services := make([]Service, 0, len(docs))
	for _, doc := range docs {
		var fs firestoreService
		if err := doc.DataTo(&fs); err != nil {
			return nil, unavailable("decode service "+doc.Ref.ID, err)
		}
		services = append(services, fs.toService())
	}
	return services, nil
}

// Service looks up a single service by its numeric id.
func (s *FirestoreStore) Service(ctx context.Context, id int) (*Service, error) {
	doc, err := s.client.Collection(servicesCollection).Doc(strconv.Itoa(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("service %d: %w", id, ErrNotFound)
		}
		return nil, unavailable("get service", err)
	}
	var fs firestoreService
	if err := doc.DataTo(&fs); err != nil {
		return nil, unavailable("decode service", err)
	}
	svc := fs.toService()
	return &svc, nil
}

// SeedCatalog writes the given catalog entries keyed by their id. Existing
// entries with the same id are overwritten.
func (s *FirestoreStore) SeedCatalog(ctx context.Context, projects []Project, services []Service) error {
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		for _, p := range projects {
			ref := s.client.Collection(projectsCollection).Doc(strconv.Itoa(p.ID))
			if err := tx.Set(ref, toFirestoreProject(p)); err != nil {
				return err
			}
		}
		for _, svc := range services {
			ref := s.client.Collection(servicesCollection).Doc(strconv.Itoa(svc.ID))
			if err := tx.Set(ref, firestoreService(svc)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return unavailable("seed catalog", err)
	}
	return nil
}

func (fc firestoreConfig) toConfig() (Config, error) {
	theme := Theme(fc.Theme)
	if !theme.Valid() {
		return Config{}, fmt.Errorf("unknown theme %q", fc.Theme)
	}
	links := make([]SocialLink, 0, len(fc.SocialLinks))
	for _, l := range fc.SocialLinks {
		links = append(links, SocialLink(l))
	}
	return Config{
		Name:         fc.Name,
		Title:        fc.Title,
		About:        fc.About,
		Email:        fc.Email,
		Phone:        fc.Phone,
		Location:     fc.Location,
		ProfileImage: fc.ProfileImage,
		Theme:        theme,
		Skills:       Skills(fc.Skills),
		Stats:        Stats(fc.Stats),
		SocialLinks:  links,
	}, nil
}

func toFirestoreConfig(c Config) firestoreConfig {
	links := make([]firestoreSocialLink, 0, len(c.SocialLinks))
	for _, l := range c.SocialLinks {
		links = append(links, firestoreSocialLink(l))
	}
	return firestoreConfig{
		Name:         c.Name,
		Title:        c.Title,
		About:        c.About,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		ProfileImage: c.ProfileImage,
		Theme:        string(c.Theme),
		Skills:       firestoreSkills(c.Skills),
		Stats:        firestoreStats(c.Stats),
		SocialLinks:  links,
	}
}

func toFirestoreProject(p Project) firestoreProject {
	return firestoreProject(p)
}

func (fp firestoreProject) toProject() Project {
	technologies := fp.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return Project{
		ID:           fp.ID,
		Title:        fp.Title,
		Description:  fp.Description,
		Image:        fp.Image,
		Technologies: technologies,
		LiveURL:      fp.LiveURL,
		GithubURL:    fp.GithubURL,
		Featured:     fp.Featured,
	}
}

func (fs firestoreService) toService() Service {
	features := fs.Features
	if features == nil {
		features = []string{}
	}
	return Service{
		ID:          fs.ID,
		Title:       fs.Title,
		Description: fs.Description,
		Icon:        fs.Icon,
		Features:    features,
	}
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
