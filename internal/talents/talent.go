package talents

import (
	"html"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Seniority is the self-declared experience level of a talent.
type Seniority string

const (
	SeniorityJunior Seniority = "Junior"
	SeniorityPleno  Seniority = "Pleno"
	SenioritySenior Seniority = "Sênior"
)

// Talent is a candidate profile.
type Talent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	Products    []string  `json:"products"`
	Areas       []string  `json:"areas"`
	Seniority   Seniority `json:"seniority"`
	FixedSalary string    `json:"fixed_salary"`
	Avatar      string    `json:"avatar,omitempty"`
	Rating      float64   `json:"rating"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// TalentFields is what a candidate submits at registration.
type TalentFields struct {
	Name        string    `json:"name" validate:"required,max=120"`
	Role        string    `json:"role" validate:"max=200"`
	Email       string    `json:"email" validate:"required,email,max=254"`
	Phone       string    `json:"phone" validate:"required,phone"`
	Location    string    `json:"location" validate:"required,max=120"`
	Bio         string    `json:"bio" validate:"max=2000"`
	Products    []string  `json:"products" validate:"dive,academy_product"`
	Areas       []string  `json:"areas" validate:"min=1,dive,interest_area"`
	Seniority   Seniority `json:"seniority" validate:"required,seniority"`
	FixedSalary string    `json:"fixed_salary" validate:"omitempty,salary"`
	Avatar      string    `json:"avatar" validate:"omitempty,url"`
	Tags        []string  `json:"tags" validate:"max=20,dive,max=40"`
}

var (
	textPolicy  = bluemonday.StrictPolicy()
	angleEscape = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// SanitizeText strips markup from free text while keeping quotes and
// ampersands readable. Entities are decoded before sanitizing so encoded
// tags are stripped too; the result never contains a raw angle bracket.
func SanitizeText(s string) string {
	clean := textPolicy.Sanitize(html.UnescapeString(s))
	return strings.TrimSpace(angleEscape.Replace(html.UnescapeString(clean)))
}

// Normalize trims the fields, strips markup from the bio, drops duplicate
// catalog selections and derives tags from areas and role when none are given.
func (f TalentFields) Normalize() TalentFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Role = strings.TrimSpace(f.Role)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	f.Location = strings.TrimSpace(f.Location)
	f.Bio = SanitizeText(f.Bio)
	f.FixedSalary = strings.TrimSpace(f.FixedSalary)
	f.Avatar = strings.TrimSpace(f.Avatar)
	f.Seniority = Seniority(strings.TrimSpace(string(f.Seniority)))
	f.Products = dedupe(f.Products)
	f.Areas = dedupe(f.Areas)
	f.Tags = dedupe(f.Tags)
	if len(f.Tags) == 0 {
		f.Tags = deriveTags(f.Areas, f.Role)
	}
	return f
}

// NewTalent builds the stored record for f.
func (f TalentFields) NewTalent(id string, now time.Time) *Talent {
	t := &Talent{
		ID:          id,
		Name:        f.Name,
		Role:        f.Role,
		Email:       f.Email,
		Phone:       f.Phone,
		Location:    f.Location,
		Bio:         f.Bio,
		Products:    append([]string(nil), f.Products...),
		Areas:       append([]string(nil), f.Areas...),
		Seniority:   f.Seniority,
		FixedSalary: f.FixedSalary,
		Avatar:      f.Avatar,
		Tags:        append([]string(nil), f.Tags...),
		CreatedAt:   now.UTC(),
	}
	t.Rating = Rating(t)
	return t
}

// Rating scores profile completeness on a 0-5 scale in half steps.
func Rating(t *Talent) float64 {
	if t == nil {
		return 0
	}
	checks := []bool{
		t.Name != "",
		t.Email != "",
		t.Phone != "",
		t.Location != "",
		len(t.Bio) >= 40,
		len(t.Products) > 0,
		len(t.Areas) > 0,
		t.Seniority != "",
		t.FixedSalary != "",
		t.Avatar != "",
	}
	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	score := 5 * float64(filled) / float64(len(checks))
	return math.Round(score*2) / 2
}

// FindTalent returns the talent with the given id or nil.
func FindTalent(list []*Talent, id string) *Talent {
	for _, t := range list {
		if t != nil && t.ID == id {
			return t
		}
	}
	return nil
}

func deriveTags(areas []string, role string) []string {
	tags := append([]string(nil), areas...)
	for _, part := range strings.FieldsFunc(role, func(r rune) bool { return r == ',' || r == '&' || r == '/' }) {
		if p := strings.TrimSpace(part); p != "" {
			tags = append(tags, p)
		}
	}
	return dedupe(tags)
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
