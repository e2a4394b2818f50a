package portfolio

// Theme is the accent color scheme of the public site.
type Theme string

// Supported themes.
const (
	ThemePurple Theme = "purple"
	ThemeBlue   Theme = "blue"
	ThemeGreen  Theme = "green"
	ThemeRed    Theme = "red"
	ThemeYellow Theme = "yellow"
)

// Themes lists every supported theme in display order.
var Themes = []Theme{ThemePurple, ThemeBlue, ThemeGreen, ThemeRed, ThemeYellow}

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// Skills holds the six skill labels shown in the about section.
type Skills struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
	Framework string `json:"framework"`
	Other     string `json:"other"`
	Database  string `json:"database"`
}

// Stats holds the free-text counters shown in the hero section.
type Stats struct {
	Projects     string `json:"projects"`
	Satisfaction string `json:"satisfaction"`
	Experience   string `json:"experience"`
}

// SocialLink is one entry of the ordered social links list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Config is the singleton site configuration document.
//
// Optional fields are nil when they have never been set and are omitted from
// the persisted JSON rather than written as null.
type Config struct {
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	About        string       `json:"about"`
	Email        string       `json:"email"`
	Phone        *string      `json:"phone,omitempty"`
	Location     *string      `json:"location,omitempty"`
	ProfileImage *string      `json:"profileImage,omitempty"`
	Theme        Theme        `json:"theme"`
	Skills       Skills       `json:"skills"`
	Stats        Stats        `json:"stats"`
	SocialLinks  []SocialLink `json:"socialLinks"`
}

// DefaultConfig returns the skeleton a first update is merged onto.
func DefaultConfig() Config {
	return Config{
		Theme:       ThemePurple,
		SocialLinks: []SocialLink{},
	}
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (c Config) Clone() Config {
	out := c
	out.Phone = cloneString(c.Phone)
	out.Location = cloneString(c.Location)
	out.ProfileImage = cloneString(c.ProfileImage)
	out.SocialLinks = append([]SocialLink{}, c.SocialLinks...)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Project is a read-only portfolio catalog entry.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	Featured     bool     `json:"featured"`
}

// Service is a read-only catalog entry describing an offered service.
type Service struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}
