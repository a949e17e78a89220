package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/inklet-app/inklet/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Comments is half of the engagement store. The comment row and the
// owning post's comment counter always move in the same transaction.
type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

func (s *Comments) Add(postID uint, author models.Account, content string) (models.Comment, error) {
	var item models.Comment

	content, err := normalizeContent(content)
	if err != nil {
		return item, err
	}

	if err := s.db.Select("id").Where("id = ?", postID).First(&models.Post{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return item, fmt.Errorf("unable to get post: %w", err)
	}

	item = models.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: author.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("total_comments", gorm.Expr("total_comments + ?", 1)).Error
	})
	if err != nil {
		return item, fmt.Errorf("unable to create comment: %w", err)
	}

	item.Author = author
	return item, nil
}

// ListForPost returns the post's comments newest first, each joined with
// its author's display fields.
func (s *Comments) ListForPost(postID uint) ([]models.Comment, error) {
	var items []models.Comment
	if err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list comments: %w", err)
	}
	return items, nil
}

func (s *Comments) Get(id uint) (models.Comment, error) {
	var item models.Comment
	if err := s.db.Preload("Author").Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return item, fmt.Errorf("unable to get comment: %w", err)
	}
	return item, nil
}

func (s *Comments) Edit(id uint, actor models.Account, content string) (models.Comment, error) {
	item, err := s.Get(id)
	if err != nil {
		return item, err
	}
	if err := AuthorizeOwner(actor, item.AuthorID); err != nil {
		return item, err
	}

	content, err = normalizeContent(content)
	if err != nil {
		return item, err
	}

	item.Content = content
	if err := s.db.Omit(clause.Associations).Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to edit comment: %w", err)
	}

	return item, nil
}

func (s *Comments) Delete(id uint, actor models.Account) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(actor, item.AuthorID); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "id = ?", item.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", item.PostID).
			UpdateColumn("total_comments", gorm.Expr("total_comments - ?", 1)).Error
	})
	if err != nil {
		return fmt.Errorf("unable to delete comment: %w", err)
	}
	return nil
}

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return content, fmt.Errorf("%w: comment content is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > models.CommentContentLimit {
		return content, fmt.Errorf("%w: comment content cannot exceed %d characters", ErrInvalidInput, models.CommentContentLimit)
	}
	return content, nil
}
