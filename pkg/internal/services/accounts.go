package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Accounts is the user directory: it maps Google subjects to local
// accounts, creating them on first sight.
type Accounts struct {
	db *gorm.DB
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

// ResolveOrCreate returns the account owning the verified identity,
// creating it when the subject has never been seen. Idempotent: the unique
// index on google_id resolves concurrent first-sight calls, the loser of
// the race re-reads the winner's row. Profile fields are refreshed from
// the verified payload on every call.
func (s *Accounts) ResolveOrCreate(identity GoogleIdentity) (models.Account, error) {
	var account models.Account

	name := displayName(identity)
	if len(name) == 0 {
		return account, fmt.Errorf("%w: google account has no name info", ErrInvalidInput)
	}

	err := s.db.Where("google_id = ?", identity.Subject).First(&account).Error
	if err == nil {
		return s.refreshProfile(account, name, identity)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, fmt.Errorf("unable to resolve account: %w", err)
	}

	account = models.Account{
		GoogleID: identity.Subject,
		Name:     name,
		Email:    identity.Email,
		Picture:  identity.Picture,
	}

	if err := s.db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent first-sight race; the row exists now.
			err = s.db.Where("google_id = ?", identity.Subject).First(&account).Error
		}
		if err != nil {
			return account, fmt.Errorf("unable to create account: %w", err)
		}
		return account, nil
	}

	log.Info().Uint("id", account.ID).Msg("Created account for new google subject.")

	return account, nil
}

// GetAccount loads an account by its internal id.
func (s *Accounts) GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("%w: account not found", ErrNotFound)
		}
		return account, fmt.Errorf("unable to get account by id: %w", err)
	}
	return account, nil
}

func (s *Accounts) refreshProfile(account models.Account, name string, identity GoogleIdentity) (models.Account, error) {
	if account.Name == name && account.Email == identity.Email && account.Picture == identity.Picture {
		return account, nil
	}

	account.Name = name
	account.Email = identity.Email
	account.Picture = identity.Picture
	if err := s.db.Model(&account).Updates(map[string]any{
		"name":    account.Name,
		"email":   account.Email,
		"picture": account.Picture,
	}).Error; err != nil {
		return account, fmt.Errorf("unable to refresh account profile: %w", err)
	}

	return account, nil
}

func displayName(identity GoogleIdentity) string {
	if name := strings.TrimSpace(identity.Name); len(name) > 0 {
		return name
	}

	parts := make([]string, 0, 2)
	for _, part := range []string{identity.GivenName, identity.FamilyName} {
		if part = strings.TrimSpace(part); len(part) > 0 {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
