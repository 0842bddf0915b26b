package models

import (
	"fmt"
	"time"
)

// Newsletter is a single published issue. Body is stored but deliberately
// absent from API responses; the wire schema only declares id, title,
// published_at and the hyperlink block (see NewsletterResponse).
type Newsletter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Body        string    `gorm:"type:text" json:"-"`
	PublishedAt time.Time `gorm:"autoCreateTime;index" json:"published_at"`
}

// NewsletterLinks carries the HATEOAS hyperlinks for a newsletter.
type NewsletterLinks struct {
	Self       string `json:"self"`
	Collection string `json:"collection"`
}

// NewsletterResponse is the wire representation of a newsletter.
type NewsletterResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	PublishedAt time.Time       `json:"published_at"`
	URL         NewsletterLinks `json:"url"`
}

// ToResponse maps a stored newsletter onto its wire representation.
func (n *Newsletter) ToResponse() NewsletterResponse {
	return NewsletterResponse{
		ID:          n.ID,
		Title:       n.Title,
		PublishedAt: n.PublishedAt,
		URL: NewsletterLinks{
			Self:       fmt.Sprintf("/newsletters/%d", n.ID),
			Collection: "/newsletters",
		},
	}
}

// CreateNewsletterInput is the payload for POST /newsletters. Both fields
// are required; id and published_at are server-assigned.
type CreateNewsletterInput struct {
	Title string `form:"title" json:"title" binding:"required"`
	Body  string `form:"body" json:"body" binding:"required"`
}

// UpdateNewsletterInput is the allow-listed payload for PATCH
// /newsletters/:id. Only the fields below can be overwritten; anything
// else the caller submits (including id) is ignored. Nil means "leave
// unchanged".
type UpdateNewsletterInput struct {
	Title       *string    `form:"title" json:"title"`
	Body        *string    `form:"body" json:"body"`
	PublishedAt *time.Time `form:"published_at" json:"published_at" time_format:"2006-01-02T15:04:05Z07:00"`
}
