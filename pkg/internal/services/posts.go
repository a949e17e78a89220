package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Posts is the content store. The author is fixed at creation; every
// mutation goes through AuthorizeOwner.
type Posts struct {
	db *gorm.DB
}

func NewPosts(db *gorm.DB) *Posts {
	return &Posts{db: db}
}

// PostPatch carries a partial update: nil means keep the current value.
type PostPatch struct {
	Title   *string
	Content *string
}

func (s *Posts) New(author models.Account, title, content string) (models.Post, error) {
	var item models.Post

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if len(title) == 0 {
		return item, fmt.Errorf("%w: post title is required", ErrInvalidInput)
	}
	if len(content) == 0 {
		return item, fmt.Errorf("%w: post content is required", ErrInvalidInput)
	}

	item = models.Post{
		Title:    title,
		Content:  content,
		Language: DetectLanguage(content),
		AuthorID: author.ID,
	}

	if err := s.db.Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, fmt.Errorf("unable to create post: %w", err)
	}

	item.Author = author
	return item, nil
}

func (s *Posts) Get(id uint) (models.Post, error) {
	var item models.Post
	if err := s.db.Preload("Author").Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return item, fmt.Errorf("unable to get post: %w", err)
	}
	return item, nil
}

// List returns every post joined with its author, newest first. Creation
// time descending is the only ordering the API promises.
func (s *Posts) List() ([]*models.Post, error) {
	var items []*models.Post
	if err := s.db.Preload("Author").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list posts: %w", err)
	}
	return items, nil
}

func (s *Posts) Edit(id uint, actor models.Account, patch PostPatch) (models.Post, error) {
	item, err := s.Get(id)
	if err != nil {
		return item, err
	}
	if err := AuthorizeOwner(actor, item.AuthorID); err != nil {
		return item, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if len(title) == 0 {
			return item, fmt.Errorf("%w: post title cannot be blank", ErrInvalidInput)
		}
		item.Title = title
	}
	if patch.Content != nil {
		content := strings.TrimSpace(*patch.Content)
		if len(content) == 0 {
			return item, fmt.Errorf("%w: post content cannot be blank", ErrInvalidInput)
		}
		item.Content = content
		item.Language = DetectLanguage(content)
	}

	item.EditedAt = lo.ToPtr(time.Now())

	if err := s.db.Omit(clause.Associations).Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to edit post: %w", err)
	}

	return item, nil
}

// Delete removes the post record only. Comments and likes referencing it
// stay behind until the maintenance sweep collects them; the request path
// deliberately does not cascade.
func (s *Posts) Delete(id uint, actor models.Account) error {
	var item models.Post
	if err := s.db.Select("id", "author_id").Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return fmt.Errorf("unable to get post: %w", err)
	}
	if err := AuthorizeOwner(actor, item.AuthorID); err != nil {
		return err
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("unable to delete post: %w", err)
	}
	return nil
}
