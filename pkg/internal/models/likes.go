package models

import "time"

// Like is a unique (account, post) endorsement marker. The composite unique
// index is the invariant: a second insert for the same pair fails at the
// database, including under concurrent requests. Likes are hard-deleted so
// a pair can be liked again after an unlike.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_likes_account_post"`
	PostID    uint `json:"post_id" gorm:"uniqueIndex:idx_likes_account_post"`
}
