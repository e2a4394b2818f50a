package portfolio

// DefaultProjects returns the sample project catalog used by the in-memory store.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:           1,
			Title:        "E-commerce Platform",
			Description:  "Full-stack e-commerce solution with payment integration, inventory management, and admin dashboard.",
			Image:        "https://images.unsplash.com/photo-1563013544-824ae1b704d3?auto=format&fit=crop&w=800&h=400",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			LiveURL:      "#",
			GithubURL:    "#",
			Featured:     true,
		},
		{
			ID:           2,
			Title:        "Fitness Tracking App",
			Description:  "Mobile app for tracking workouts, nutrition, and health metrics with social features and AI recommendations.",
			Image:        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=800&h=400",
			Technologies: []string{"React Native", "Firebase", "ML Kit"},
			LiveURL:      "#",
			GithubURL:    "#",
			Featured:     true,
		},
		{
			ID:           3,
			Title:        "Analytics Dashboard",
			Description:  "Real-time analytics dashboard with interactive charts, data visualization, and automated reporting features.",
			Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&h=400",
			Technologies: []string{"Vue.js", "D3.js", "Python"},
			LiveURL:      "#",
			GithubURL:    "#",
			Featured:     true,
		},
	}
}

// DefaultServices returns the sample service catalog used by the in-memory store.
func DefaultServices() []Service {
	return []Service{
		{
			ID:          1,
			Title:       "Frontend Development",
			Description: "Creating responsive, interactive user interfaces using modern frameworks like React, Vue, and Angular.",
			Icon:        "fas fa-code",
			Features:    []string{},
		},
		{
			ID:          2,
			Title:       "Backend Development",
			Description: "Building robust APIs and server-side applications with Node.js, Python, and various database technologies.",
			Icon:        "fas fa-database",
			Features:    []string{},
		},
		{
			ID:          3,
			Title:       "Mobile Development",
			Description: "Developing cross-platform mobile applications using React Native and native iOS/Android technologies.",
			Icon:        "fas fa-mobile-alt",
			Features:    []string{},
		},
		{
			ID:          4,
			Title:       "Cloud Services",
			Description: "Implementing cloud solutions with AWS, Azure, and Google Cloud for scalable and reliable applications.",
			Icon:        "fas fa-cloud",
			Features:    []string{},
		},
		{
			ID:          5,
			Title:       "DevOps & CI/CD",
			Description: "Setting up automated deployment pipelines and infrastructure management for efficient development workflows.",
			Icon:        "fas fa-cogs",
			Features:    []string{},
		},
		{
			ID:          6,
			Title:       "Security & Testing",
			Description: "Implementing security best practices and comprehensive testing strategies to ensure application reliability.",
			Icon:        "fas fa-shield-alt",
			Features:    []string{},
		},
	}
}
