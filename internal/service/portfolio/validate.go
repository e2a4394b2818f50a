package portfolio

import (
	"net/mail"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const (
	fieldName         = "name"
	fieldTitle        = "title"
	fieldAbout        = "about"
	fieldEmail        = "email"
	fieldPhone        = "phone"
	fieldLocation     = "location"
	fieldProfileImage = "profileImage"
	fieldTheme        = "theme"
	fieldSkills       = "skills"
	fieldStats        = "stats"
	fieldSocialLinks  = "socialLinks"
)

// Narrower than RFC 5322: no quoted local parts, single-label hosts or
// address literals.
var (
	emailLocal  = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]$`)
	emailDomain = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]*\.)+[A-Za-z]{2,}$`)
)

type validator struct {
	patch  Patch
	issues []FieldIssue
}

func (v *validator) fail(field, msg string) {
	v.issues = append(v.issues, FieldIssue{Field: field, Message: msg})
}

// ValidatePatch checks a decoded update payload against the closed config
// schema and converts it into a normalized Patch with trimmed strings.
//
// All violations are collected; the returned *ValidationError lists them in
// top-level field name order.
func ValidatePatch(record map[string]any) (Patch, error) {
	v := &validator{}

	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		raw := record[key]
		switch key {
		case fieldName, fieldTitle, fieldAbout:
			if s, ok := v.requiredText(key, raw); ok {
				v.setText(key, s)
			}
		case fieldEmail:
			if s, ok := v.email(raw); ok {
				v.patch.Email = Some(s)
			}
		case fieldPhone, fieldLocation, fieldProfileImage:
			s, ok := raw.(string)
			if !ok {
				v.fail(key, "must be a string")
				continue
			}
			v.setText(key, strings.TrimSpace(s))
		case fieldTheme:
			s, ok := raw.(string)
			if !ok || !Theme(strings.TrimSpace(s)).Valid() {
				v.fail(key, "must be one of purple, blue, green, red, yellow")
				continue
			}
			v.patch.Theme = Some(Theme(strings.TrimSpace(s)))
		case fieldSkills:
			slots, ok := v.slots(key, raw, "primary", "secondary", "tertiary", "framework", "other", "database")
			if ok {
				v.patch.Skills = Some(Skills{
					Primary:   slots["primary"],
					Secondary: slots["secondary"],
					Tertiary:  slots["tertiary"],
					Framework: slots["framework"],
					Other:     slots["other"],
					Database:  slots["database"],
				})
			}
		case fieldStats:
			slots, ok := v.slots(key, raw, "projects", "satisfaction", "experience")
			if ok {
				v.patch.Stats = Some(Stats{
					Projects:     slots["projects"],
					Satisfaction: slots["satisfaction"],
					Experience:   slots["experience"],
				})
			}
		case fieldSocialLinks:
			if links, ok := v.socialLinks(raw); ok {
				v.patch.SocialLinks = Some(links)
			}
		default:
			v.fail(key, "unknown field")
		}
	}

	if len(v.issues) > 0 {
		return Patch{}, &ValidationError{Issues: v.issues}
	}
	return v.patch, nil
}

func (v *validator) setText(field, s string) {
	switch field {
	case fieldName:
		v.patch.Name = Some(s)
	case fieldTitle:
		v.patch.Title = Some(s)
	case fieldAbout:
		v.patch.About = Some(s)
	case fieldPhone:
		v.patch.Phone = Some(s)
	case fieldLocation:
		v.patch.Location = Some(s)
	case fieldProfileImage:
		v.patch.ProfileImage = Some(s)
	}
}

func (v *validator) requiredText(field string, raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		v.fail(field, "must be a string")
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		v.fail(field, "must not be empty")
		return "", false
	}
	return s, true
}

func (v *validator) email(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		v.fail(fieldEmail, "must be a string")
		return "", false
	}
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		v.fail(fieldEmail, "must be a valid email address")
		return "", false
	}
	at := strings.LastIndexByte(s, '@')
	if !emailLocal.MatchString(s[:at]) || !emailDomain.MatchString(s[at+1:]) {
		v.fail(fieldEmail, "must be a valid email address")
		return "", false
	}
	return s, true
}

// slots validates a record of named string slots. Missing slots become empty
// and unknown slots are ignored.
func (v *validator) slots(field string, raw any, names ...string) (map[string]string, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		v.fail(field, "must be an object")
		return nil, false
	}
	out := make(map[string]string, len(names))
	valid := true
	for _, name := range names {
		val, present := obj[name]
		if !present {
			continue
		}
		s, ok := val.(string)
		if !ok {
			v.fail(field+"."+name, "must be a string")
			valid = false
			continue
		}
		out[name] = strings.TrimSpace(s)
	}
	return out, valid
}

func (v *validator) socialLinks(raw any) ([]SocialLink, bool) {
	items, ok := raw.([]any)
	if !ok {
		v.fail(fieldSocialLinks, "must be an array")
		return nil, false
	}
	links := make([]SocialLink, 0, len(items))
	valid := true
	for i, item := range items {
		prefix := fieldSocialLinks + "[" + strconv.Itoa(i) + "]"
		obj, ok := item.(map[string]any)
		if !ok {
			v.fail(prefix, "must be an object")
			valid = false
			continue
		}
		var link SocialLink
		for _, name := range []string{"platform", "url", "icon"} {
			s, ok := obj[name].(string)
			if !ok {
				v.fail(prefix+"."+name, "must be a string")
				valid = false
				continue
			}
			s = strings.TrimSpace(s)
			switch name {
			case "platform":
				link.Platform = s
			case "url":
				link.URL = s
			case "icon":
				link.Icon = s
			}
		}
		links = append(links, link)
	}
	return links, valid
}
