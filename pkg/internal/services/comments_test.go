package services

import (
	"strings"
	"testing"
	"time"

	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentAddAndCounter(t *testing.T) {
	db := newTestDB(t)
	comments := NewComments(db)
	author := newTestAccount(t, db, "comment-author")
	post := newTestPost(t, db, author)

	item, err := comments.Add(post.ID, author, "  Nice post!  ")
	require.NoError(t, err)
	assert.Equal(t, "Nice post!", item.Content)
	assert.Equal(t, author.ID, item.AuthorID)
	assert.Equal(t, author.Name, item.Author.Name)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.EqualValues(t, 1, stored.TotalComments)
}

func TestCommentAddValidation(t *testing.T) {
	db := newTestDB(t)
	comments := NewComments(db)
	author := newTestAccount(t, db, "comment-author")
	post := newTestPost(t, db, author)

	_, err := comments.Add(post.ID, author, "   \n\t  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = comments.Add(post.ID, author, strings.Repeat("x", models.CommentContentLimit+1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Zero(t, stored.TotalComments)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommentAddMissingPost(t *testing.T) {
	db := newTestDB(t)
	comments := NewComments(db)
	author := newTestAccount(t, db, "comment-author")

	_, err := comments.Add(999, author, "Into the void")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	comments := NewComments(db)
	author := newTestAccount(t, db, "comment-author")
	post := newTestPost(t, db, author)

	base := time.Now().Add(-time.Hour)
	var ids []uint
	for i := 0; i < 3; i++ {
		item, err := comments.Add(post.ID, author, "Comment body")
		require.NoError(t, err)
		require.NoError(t, db.Model(&item).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		ids = append(ids, item.ID)
	}

	items, err := comments.ListForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	got := lo.Map(items, func(item models.Comment, _ int) uint { return item.ID })
	assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, got)
	for _, item := range items {
		assert.Equal(t, author.Name, item.Author.Name)
	}
}

func TestCommentEditRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	comments := NewComments(db)
	author := newTestAccount(t, db, "comment-author")
	stranger := newTestAccount(t, db, "stranger")
	post := newTestPost(t, db, author)

	item, err := comments.Add(post.ID, author, "Original")
	require.NoError(t, err)

	_, err = comments.Edit(item.ID, stranger, "Hijacked")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	updated, err := comments.Edit(item.ID, author, "Edited")
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Content)

	_, err = comments.Edit(item.ID, author, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommentDelete(t *testing.T) {
	db := newTestDB(t)
	comments := NewComments(db)
	author := newTestAccount(t, db, "comment-author")
	stranger := newTestAccount(t, db, "stranger")
	post := newTestPost(t, db, author)

	item, err := comments.Add(post.ID, author, "Doomed comment")
	require.NoError(t, err)

	assert.ErrorIs(t, comments.Delete(item.ID, stranger), ErrNotAuthorized)
	require.NoError(t, comments.Delete(item.ID, author))

	_, err = comments.Get(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Zero(t, stored.TotalComments)

	assert.ErrorIs(t, comments.Delete(item.ID, author), ErrNotFound)
}
