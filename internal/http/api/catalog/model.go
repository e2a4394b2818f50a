package catalog

import (
	portfoliosvc "github.com/janisto/portfolio-site/internal/service/portfolio"
)

// Project is a portfolio catalog entry.
type Project struct {
	ID           int      `json:"id"                  doc:"Project identifier"     example:"1"`
	Title        string   `json:"title"               doc:"Project title"          example:"Analytics Dashboard"`
	Description  string   `json:"description"         doc:"Short description"`
	Image        string   `json:"image"               doc:"Cover image URL"`
	Technologies []string `json:"technologies"        doc:"Technologies used"`
	LiveURL      string   `json:"liveUrl,omitempty"   doc:"Live demo URL"`
	GithubURL    string   `json:"githubUrl,omitempty" doc:"Source repository URL"`
	Featured     bool     `json:"featured"            doc:"Shown on the landing page" example:"true"`
}

// Service is an offered service.
type Service struct {
	ID          int      `json:"id"          doc:"Service identifier" example:"1"`
	Title       string   `json:"title"       doc:"Service title"      example:"Backend Development"`
	Description string   `json:"description" doc:"Short description"`
	Icon        string   `json:"icon"        doc:"Icon class name"    example:"fas fa-database"`
	Features    []string `json:"features"    doc:"Feature bullet points"`
}

func toHTTPProject(p portfoliosvc.Project) Project {
	out := Project(p)
	if out.Technologies == nil {
		out.Technologies = []string{}
	}
	return out
}

func toHTTPService(s portfoliosvc.Service) Service {
	out := Service(s)
	if out.Features == nil {
		out.Features = []string{}
	}
	return out
}
