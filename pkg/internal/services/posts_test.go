package services

import (
	"testing"
	"time"

	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRoundTrip(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	author := newTestAccount(t, db, "post-author")

	created, err := posts.New(author, "  A title  ", "  Some content here.  ")
	require.NoError(t, err)
	assert.Equal(t, "A title", created.Title)
	assert.Equal(t, "Some content here.", created.Content)

	fetched, err := posts.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Content, fetched.Content)
	assert.Equal(t, author.ID, fetched.AuthorID)
	assert.Equal(t, author.Name, fetched.Author.Name)
}

func TestPostCreateValidation(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	author := newTestAccount(t, db, "post-author")

	_, err := posts.New(author, "   ", "content")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = posts.New(author, "title", " \n\t ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	author := newTestAccount(t, db, "post-author")

	base := time.Now().Add(-time.Hour)
	var ids []uint
	for i := 0; i < 3; i++ {
		item, err := posts.New(author, "Post", "Content of the post.")
		require.NoError(t, err)
		require.NoError(t, db.Model(&item).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		ids = append(ids, item.ID)
	}

	items, err := posts.List()
	require.NoError(t, err)
	require.Len(t, items, 3)

	got := lo.Map(items, func(item *models.Post, _ int) uint { return item.ID })
	assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, got)
}

func TestPostEditPartial(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	author := newTestAccount(t, db, "post-author")

	item := newTestPost(t, db, author)

	updated, err := posts.Edit(item.ID, author, PostPatch{Title: lo.ToPtr("New title")})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, item.Content, updated.Content)
	assert.NotNil(t, updated.EditedAt)

	_, err = posts.Edit(item.ID, author, PostPatch{Title: lo.ToPtr("   ")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPostMutationRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	author := newTestAccount(t, db, "post-author")
	stranger := newTestAccount(t, db, "stranger")

	item := newTestPost(t, db, author)

	_, err := posts.Edit(item.ID, stranger, PostPatch{Title: lo.ToPtr("Hijacked")})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = posts.Delete(item.ID, stranger)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	fetched, err := posts.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Title, fetched.Title)
}

func TestPostDelete(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	author := newTestAccount(t, db, "post-author")

	item := newTestPost(t, db, author)
	require.NoError(t, posts.Delete(item.ID, author))

	_, err := posts.Get(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = posts.Delete(item.ID, author)
	assert.ErrorIs(t, err, ErrNotFound)
}
