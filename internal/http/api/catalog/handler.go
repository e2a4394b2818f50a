package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/portfolio-site/internal/platform/logging"
	"github.com/janisto/portfolio-site/internal/platform/pagination"
	portfoliosvc "github.com/janisto/portfolio-site/internal/service/portfolio"
)

const (
	projectsCursor = "projects"
	servicesCursor = "services"
)

// Store reads the read-only project and service catalog.
type Store interface {
	Projects(ctx context.Context) ([]portfoliosvc.Project, error)
	Project(ctx context.Context, id int) (*portfoliosvc.Project, error)
	Services(ctx context.Context) ([]portfoliosvc.Service, error)
	Service(ctx context.Context, id int) (*portfoliosvc.Service, error)
}

// Register registers the catalog endpoints.
func Register(api huma.API, store Store) {
	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/api/projects",
		Summary:     "List projects",
		Description: "Returns the project catalog in id order. Pass limit or cursor to page through it; the next page is linked in the Link header.",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, input *ProjectsListInput) (*ProjectsListOutput, error) {
		projects, err := store.Projects(ctx)
		if err != nil {
			applog.LogError(ctx, "project catalog read failed", err)
			return nil, mapServiceError(err, "project")
		}

		query := url.Values{}
		if input.Featured {
			projects = slices.DeleteFunc(projects, func(p portfoliosvc.Project) bool { return !p.Featured })
			query.Set("featured", "true")
		}

		page, err := paginate(projects, input.Params, projectsCursor,
			func(p portfoliosvc.Project) string { return strconv.Itoa(p.ID) }, "/api/projects", query)
		if err != nil {
			return nil, err
		}
		out := &ProjectsListOutput{Link: page.LinkHeader, TotalCount: page.Total, Body: make([]Project, 0, len(page.Items))}
		for _, p := range page.Items {
			out.Body = append(out.Body, toHTTPProject(p))
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/api/projects/{id}",
		Summary:     "Get a project",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, input *GetInput) (*ProjectGetOutput, error) {
		p, err := store.Project(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err, "project")
		}
		return &ProjectGetOutput{Body: toHTTPProject(*p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-services",
		Method:      http.MethodGet,
		Path:        "/api/services",
		Summary:     "List services",
		Description: "Returns the service catalog in id order, optionally paged like the project list.",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, input *ServicesListInput) (*ServicesListOutput, error) {
		services, err := store.Services(ctx)
		if err != nil {
			applog.LogError(ctx, "service catalog read failed", err)
			return nil, mapServiceError(err, "service")
		}

		page, err := paginate(services, input.Params, servicesCursor,
			func(s portfoliosvc.Service) string { return strconv.Itoa(s.ID) }, "/api/services", nil)
		if err != nil {
			return nil, err
		}
		out := &ServicesListOutput{Link: page.LinkHeader, TotalCount: page.Total, Body: make([]Service, 0, len(page.Items))}
		for _, s := range page.Items {
			out.Body = append(out.Body, toHTTPService(s))
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-service",
		Method:      http.MethodGet,
		Path:        "/api/services/{id}",
		Summary:     "Get a service",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, input *GetInput) (*ServiceGetOutput, error) {
		s, err := store.Service(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err, "service")
		}
		return &ServiceGetOutput{Body: toHTTPService(*s)}, nil
	})
}

// paginate returns every item when the request carries no paging
// parameters, and one page otherwise.
func paginate[T any](items []T, p pagination.Params, kind string, key func(T) string, path string, query url.Values) (pagination.Page[T], error) {
	if !p.Paged() {
		return pagination.Page[T]{Items: items, Total: len(items)}, nil
	}
	page, err := pagination.Paginate(items, p, kind, key, path, query)
	if errors.Is(err, pagination.ErrInvalidCursor) {
		return page, huma.Error400BadRequest("invalid cursor")
	}
	return page, err
}

func mapServiceError(err error, kind string) error {
	switch {
	case errors.Is(err, portfoliosvc.ErrNotFound):
		return huma.Error404NotFound(kind + " not found")
	default:
		return huma.Error500InternalServerError("failed to fetch " + kind + "s")
	}
}
