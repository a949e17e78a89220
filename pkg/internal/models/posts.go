package models

import "time"

// Post is a published piece of content with a single, immutable author.
// Engagement counters are maintained in the same transaction as the
// comment or like mutation they describe, so readers never observe a
// child record without its counter (or the other way around).
type Post struct {
	BaseModel

	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`

	EditedAt *time.Time `json:"edited_at"`

	TotalComments int64 `json:"total_comments"`
	TotalLikes    int64 `json:"total_likes"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
