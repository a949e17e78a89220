package services

import (
	"testing"

	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupSweepsOrphanEngagement(t *testing.T) {
	db := newTestDB(t)
	posts := NewPosts(db)
	comments := NewComments(db)
	likes := NewLikes(db, newTestCache(t))
	maintenance := NewMaintenance(db)

	author := newTestAccount(t, db, "cleanup-author")
	fan := newTestAccount(t, db, "cleanup-fan")

	doomed := newTestPost(t, db, author)
	survivor, err := posts.New(author, "Survivor", "This one stays around.")
	require.NoError(t, err)

	_, err = comments.Add(doomed.ID, fan, "orphan-to-be")
	require.NoError(t, err)
	keptComment, err := comments.Add(survivor.ID, fan, "still attached")
	require.NoError(t, err)

	_, err = likes.LikePost(doomed.ID, fan)
	require.NoError(t, err)
	_, err = likes.LikePost(survivor.ID, fan)
	require.NoError(t, err)

	// Post deletion does not cascade; the children are orphaned on purpose.
	require.NoError(t, posts.Delete(doomed.ID, author))

	var orphanComments, orphanLikes int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", doomed.ID).Count(&orphanComments).Error)
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", doomed.ID).Count(&orphanLikes).Error)
	assert.EqualValues(t, 1, orphanComments)
	assert.EqualValues(t, 1, orphanLikes)

	maintenance.CleanupOrphanEngagement()

	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", doomed.ID).Count(&orphanComments).Error)
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", doomed.ID).Count(&orphanLikes).Error)
	assert.Zero(t, orphanComments)
	assert.Zero(t, orphanLikes)

	var tombstones int64
	require.NoError(t, db.Unscoped().Model(&models.Post{}).Where("id = ?", doomed.ID).Count(&tombstones).Error)
	assert.Zero(t, tombstones)

	// The live post and its engagement are untouched.
	_, err = posts.Get(survivor.ID)
	require.NoError(t, err)
	_, err = comments.Get(keptComment.ID)
	require.NoError(t, err)

	liked, err := likes.IsLiked(survivor.ID, fan)
	require.NoError(t, err)
	assert.True(t, liked)
}
