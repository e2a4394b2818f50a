package catalog

import "github.com/janisto/portfolio-site/internal/platform/pagination"

// ProjectsListInput defines query parameters for listing projects.
type ProjectsListInput struct {
	pagination.Params
	Featured bool `query:"featured" doc:"Only return featured projects"`
}

// ServicesListInput defines query parameters for listing services.
type ServicesListInput struct {
	pagination.Params
}

// GetInput selects a single catalog entry.
type GetInput struct {
	ID int `path:"id" minimum:"1" doc:"Entry identifier" example:"1"`
}
