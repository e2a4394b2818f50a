package portfolio

// Optional carries a value together with whether it was supplied at all.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a supplied Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Patch is a partial update of Config. Fields left unset keep their prior value.
type Patch struct {
	Name         Optional[string]
	Title        Optional[string]
	About        Optional[string]
	Email        Optional[string]
	Phone        Optional[string]
	Location     Optional[string]
	ProfileImage Optional[string]
	Theme        Optional[Theme]
	Skills       Optional[Skills]
	Stats        Optional[Stats]
	SocialLinks  Optional[[]SocialLink]
}

// Apply merges p onto base at the top level. A supplied field replaces the
// prior value wholesale; nested records are not merged slot by slot.
func (p Patch) Apply(base Config) Config {
	out := base.Clone()
	if p.Name.Set {
		out.Name = p.Name.Value
	}
	if p.Title.Set {
		out.Title = p.Title.Value
	}
	if p.About.Set {
		out.About = p.About.Value
	}
	if p.Email.Set {
		out.Email = p.Email.Value
	}
	if p.Phone.Set {
		out.Phone = cloneString(&p.Phone.Value)
	}
	if p.Location.Set {
		out.Location = cloneString(&p.Location.Value)
	}
	if p.ProfileImage.Set {
		out.ProfileImage = cloneString(&p.ProfileImage.Value)
	}
	if p.Theme.Set {
		out.Theme = p.Theme.Value
	}
	if p.Skills.Set {
		out.Skills = p.Skills.Value
	}
	if p.Stats.Set {
		out.Stats = p.Stats.Value
	}
	if p.SocialLinks.Set {
		out.SocialLinks = append([]SocialLink{}, p.SocialLinks.Value...)
	}
	if out.SocialLinks == nil {
		out.SocialLinks = []SocialLink{}
	}
	return out
}

// Fields returns the JSON names of the supplied fields, in schema order.
func (p Patch) Fields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(p.Name.Set, fieldName)
	add(p.Title.Set, fieldTitle)
	add(p.About.Set, fieldAbout)
	add(p.Email.Set, fieldEmail)
	add(p.Phone.Set, fieldPhone)
	add(p.Location.Set, fieldLocation)
	add(p.ProfileImage.Set, fieldProfileImage)
	add(p.Theme.Set, fieldTheme)
	add(p.Skills.Set, fieldSkills)
	add(p.Stats.Set, fieldStats)
	add(p.SocialLinks.Set, fieldSocialLinks)
	return fields
}
