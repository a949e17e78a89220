package services

import (
	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Maintenance owns the timed database chores. Post deletion does not
// cascade in the request path, so comments and likes pointing at a dead
// post linger until this sweep collects them.
type Maintenance struct {
	db *gorm.DB
}

func NewMaintenance(db *gorm.DB) *Maintenance {
	return &Maintenance{db: db}
}

func (s *Maintenance) CleanupOrphanEngagement() {
	log.Debug().Msg("Now cleaning up orphan engagement records...")

	var swept int64

	livePosts := s.db.Model(&models.Post{}).Select("id")
	if result := s.db.Where("post_id NOT IN (?)", livePosts).
		Delete(&models.Like{}); result.Error != nil {
		log.Error().Err(result.Error).Msg("An error occurred when cleaning up orphan likes...")
	} else {
		swept += result.RowsAffected
	}

	livePosts = s.db.Model(&models.Post{}).Select("id")
	if result := s.db.Unscoped().Where("post_id NOT IN (?)", livePosts).
		Delete(&models.Comment{}); result.Error != nil {
		log.Error().Err(result.Error).Msg("An error occurred when cleaning up orphan comments...")
	} else {
		swept += result.RowsAffected
	}

	// Children are gone, the tombstones can go too.
	if result := s.db.Unscoped().Where("deleted_at IS NOT NULL").
		Delete(&models.Post{}); result.Error != nil {
		log.Error().Err(result.Error).Msg("An error occurred when purging deleted posts...")
	} else {
		swept += result.RowsAffected
	}

	if swept > 0 {
		log.Info().Int64("count", swept).Msg("Cleaned up orphan engagement records.")
	}
}
