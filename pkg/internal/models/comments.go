package models

const CommentContentLimit = 500

// Comment belongs to exactly one post and one author. Only the author may
// edit or delete it.
type Comment struct {
	BaseModel

	Content string `json:"content"`

	PostID   uint    `json:"post_id"`
	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
