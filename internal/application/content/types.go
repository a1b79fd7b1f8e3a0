package content

import "time"

// Key prefixes in the key-value store, one per collection.
const (
	projectPrefix     = "project:"
	testimonialPrefix = "testimonial:"
	achievementPrefix = "achievement:"
	siteTextPrefix    = "sitetext:"
)

// Project is a portfolio entry.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Summary     string    `json:"summary" validate:"max=500"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty" validate:"omitempty,url"`
	LiveURL     string    `json:"live_url,omitempty" validate:"omitempty,url"`
	ImageKey    string    `json:"image_key,omitempty"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Testimonial is a quote from a client or colleague.
type Testimonial struct {
	ID        string    `json:"id"`
	Author    string    `json:"author" validate:"required,max=100"`
	Role      string    `json:"role,omitempty" validate:"max=150"`
	Quote     string    `json:"quote" validate:"required,max=2000"`
	AvatarKey string    `json:"avatar_key,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Achievement is an award, certification or milestone.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Issuer      string    `json:"issuer,omitempty" validate:"max=150"`
	Description string    `json:"description,omitempty"`
	AwardedOn   string    `json:"awarded_on,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SiteText is a named block of copy (about, hero, footer and so on)
// authored in markdown. HTML is rendered and sanitized server-side.
type SiteText struct {
	Key       string    `json:"key" validate:"required,max=100"`
	Markdown  string    `json:"markdown" validate:"required"`
	HTML      string    `json:"html,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
