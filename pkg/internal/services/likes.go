package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/inklet-app/inklet/pkg/internal/models"
	"gorm.io/gorm"
)

// Likes is the other half of the engagement store. A like either exists
// for an (account, post) pair or it does not; the composite unique index
// arbitrates every race. Status reads go through the in-process cache.
type Likes struct {
	db    *gorm.DB
	cache store.StoreInterface
}

func NewLikes(db *gorm.DB, cacheStore store.StoreInterface) *Likes {
	return &Likes{db: db, cache: cacheStore}
}

func likeStatusKey(accountID, postID uint) string {
	return fmt.Sprintf("like-status#%d:%d", accountID, postID)
}

// LikePost records the endorsement. ErrAlreadyExists when the pair is
// already liked, including the case where a concurrent request won the
// insert; the transaction rolls the counter back on conflict.
func (s *Likes) LikePost(postID uint, user models.Account) (models.Like, error) {
	var item models.Like

	if err := s.db.Select("id").Where("id = ?", postID).First(&models.Post{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return item, fmt.Errorf("unable to get post: %w", err)
	}

	item = models.Like{
		AccountID: user.ID,
		PostID:    postID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("total_likes", gorm.Expr("total_likes + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return item, fmt.Errorf("%w: post already liked", ErrAlreadyExists)
		}
		return item, fmt.Errorf("unable to create like: %w", err)
	}

	s.flushLikeStatus(user.ID, postID)
	return item, nil
}

// UnlikePost removes the endorsement, ErrNotFound when there is none.
func (s *Likes) UnlikePost(postID uint, user models.Account) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("account_id = ? AND post_id = ?", user.ID, postID).
			Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: like not found", ErrNotFound)
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("total_likes", gorm.Expr("total_likes - ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("unable to delete like: %w", err)
	}

	s.flushLikeStatus(user.ID, postID)
	return nil
}

// IsLiked reports whether the pair is currently liked. Read-only; cached
// for a minute with mutation-side invalidation.
func (s *Likes) IsLiked(postID uint, user models.Account) (bool, error) {
	marshal := marshaler.New(cache.New[any](s.cache))
	ctx := context.Background()
	key := likeStatusKey(user.ID, postID)

	if status, err := marshal.Get(ctx, key, new(bool)); err == nil {
		if liked, ok := status.(*bool); ok {
			return *liked, nil
		}
	}

	var count int64
	if err := s.db.Model(&models.Like{}).
		Where("account_id = ? AND post_id = ?", user.ID, postID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("unable to check like status: %w", err)
	}

	liked := count > 0
	_ = marshal.Set(
		ctx,
		key,
		liked,
		store.WithExpiration(time.Minute),
		store.WithTags([]string{fmt.Sprintf("account#%d", user.ID)}),
	)

	return liked, nil
}

func (s *Likes) flushLikeStatus(accountID, postID uint) {
	marshal := marshaler.New(cache.New[any](s.cache))
	_ = marshal.Delete(context.Background(), likeStatusKey(accountID, postID))
}
