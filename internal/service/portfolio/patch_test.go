package portfolio

import (
	"slices"
	"testing"
)

func TestPatchApplyOntoSkeleton(t *testing.T) {
	got := Patch{Name: Some("A")}.Apply(DefaultConfig())

	if got.Name != "A" {
		t.Errorf("expected name A, got %q", got.Name)
	}
	if got.Theme != ThemePurple {
		t.Errorf("expected default theme purple, got %s", got.Theme)
	}
	if got.SocialLinks == nil || len(got.SocialLinks) != 0 {
		t.Errorf("expected empty non-nil social links, got %#v", got.SocialLinks)
	}
	if got.Phone != nil {
		t.Errorf("expected phone to stay unset, got %q", *got.Phone)
	}
}

func TestPatchApplyFlatMerge(t *testing.T) {
	base := DefaultConfig()
	base.Skills = Skills{Primary: "Go", Secondary: "Rust"}
	base.Title = "Engineer"

	got := Patch{Skills: Some(Skills{Database: "SQLite"})}.Apply(base)

	if got.Skills != (Skills{Database: "SQLite"}) {
		t.Errorf("expected skills replaced wholesale, got %+v", got.Skills)
	}
	if got.Title != "Engineer" {
		t.Errorf("expected title preserved, got %q", got.Title)
	}
}

func TestPatchApplyExplicitEmpty(t *testing.T) {
	base := DefaultConfig()
	phone := "+358401234567"
	base.Phone = &phone

	got := Patch{Phone: Some("")}.Apply(base)
	if got.Phone == nil || *got.Phone != "" {
		t.Errorf("expected explicitly empty phone, got %v", got.Phone)
	}

	got = Patch{}.Apply(base)
	if got.Phone == nil || *got.Phone != phone {
		t.Errorf("expected phone preserved, got %v", got.Phone)
	}
}

func TestPatchApplyDoesNotAliasBase(t *testing.T) {
	base := DefaultConfig()
	base.SocialLinks = []SocialLink{{Platform: "GitHub"}}

	got := Patch{Name: Some("A")}.Apply(base)
	got.SocialLinks[0].Platform = "changed"

	if base.SocialLinks[0].Platform != "GitHub" {
		t.Error("expected base social links to be untouched")
	}
}

func TestPatchFields(t *testing.T) {
	p := Patch{Theme: Some(ThemeRed), Name: Some("A"), SocialLinks: Some([]SocialLink{})}
	want := []string{"name", "theme", "socialLinks"}
	if !slices.Equal(p.Fields(), want) {
		t.Errorf("expected %v, got %v", want, p.Fields())
	}
	if fields := (Patch{}).Fields(); len(fields) != 0 {
		t.Errorf("expected zero patch to have no fields, got %v", fields)
	}
}
