package siteconfig

import (
	portfoliosvc "github.com/janisto/portfolio-site/internal/service/portfolio"
)

// Skills are the six skill labels of the about section.
type Skills struct {
	Primary   string `json:"primary"   doc:"Primary skill"   example:"Go"`
	Secondary string `json:"secondary" doc:"Secondary skill" example:"TypeScript"`
	Tertiary  string `json:"tertiary"  doc:"Tertiary skill"  example:"Python"`
	Framework string `json:"framework" doc:"Framework"       example:"React"`
	Other     string `json:"other"     doc:"Other skill"     example:"Docker"`
	Database  string `json:"database"  doc:"Database"        example:"PostgreSQL"`
}

// Stats are the free-text counters of the hero section.
type Stats struct {
	Projects     string `json:"projects"     doc:"Completed projects"  example:"50+"`
	Satisfaction string `json:"satisfaction" doc:"Client satisfaction" example:"100%"`
	Experience   string `json:"experience"   doc:"Years of experience" example:"5+"`
}

// SocialLink is one entry of the ordered social links.
type SocialLink struct {
	Platform string `json:"platform" doc:"Platform name"   example:"GitHub"`
	URL      string `json:"url"      doc:"Profile URL"     example:"https://github.com/jane"`
	Icon     string `json:"icon"     doc:"Icon class name" example:"fab fa-github"`
}

// PortfolioConfig is the site configuration document.
type PortfolioConfig struct {
	Name         string       `json:"name"                   doc:"Display name"           example:"Jane Doe"`
	Title        string       `json:"title"                  doc:"Professional title"     example:"Full-Stack Developer"`
	About        string       `json:"about"                  doc:"About section text"`
	Email        string       `json:"email"                  doc:"Contact email"          example:"jane@example.com"`
	Phone        *string      `json:"phone,omitempty"        doc:"Contact phone"          example:"+1 555 0100"`
	Location     *string      `json:"location,omitempty"     doc:"Location"               example:"Helsinki, Finland"`
	ProfileImage *string      `json:"profileImage,omitempty" doc:"Profile image URL"      example:"/data/images/profile-1700000000.png"`
	Theme        string       `json:"theme"                  doc:"Accent color theme"     enum:"purple,blue,green,red,yellow"`
	Skills       Skills       `json:"skills"                 doc:"Skill labels"`
	Stats        Stats        `json:"stats"                  doc:"Hero counters"`
	SocialLinks  []SocialLink `json:"socialLinks"            doc:"Ordered social links"`
}

func toHTTPConfig(c *portfoliosvc.Config) PortfolioConfig {
	links := make([]SocialLink, 0, len(c.SocialLinks))
	for _, l := range c.SocialLinks {
		links = append(links, SocialLink(l))
	}
	return PortfolioConfig{
		Name:         c.Name,
		Title:        c.Title,
		About:        c.About,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		ProfileImage: c.ProfileImage,
		Theme:        string(c.Theme),
		Skills:       Skills(c.Skills),
		Stats:        Stats(c.Stats),
		SocialLinks:  links,
	}
}
