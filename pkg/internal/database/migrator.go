package database

import (
	"github.com/inklet-app/inklet/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Post{},
	&models.Comment{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Like{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
