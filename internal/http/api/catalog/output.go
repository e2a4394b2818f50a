package catalog

// ProjectsListOutput is a page of projects with pagination headers.
type ProjectsListOutput struct {
	Link       string `header:"Link"          doc:"RFC 8288 pagination links"`
	TotalCount int    `header:"X-Total-Count" doc:"Number of projects matching the filter"`
	Body       []Project
}

// ProjectGetOutput for GET /api/projects/{id}
type ProjectGetOutput struct {
	Body Project
}

// ServicesListOutput is a page of services with pagination headers.
type ServicesListOutput struct {
	Link       string `header:"Link"          doc:"RFC 8288 pagination links"`
	TotalCount int    `header:"X-Total-Count" doc:"Number of services"`
	Body       []Service
}

// ServiceGetOutput for GET /api/services/{id}
type ServiceGetOutput struct {
	Body Service
}
