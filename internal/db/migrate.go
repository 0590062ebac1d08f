package db

import (
	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/pkg/logger"
)

// Migrate runs auto-migrations for all models
func Migrate() error {
	logger.Info("Running database migrations", nil)

	err := DB.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Employee{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Notification{},
	)
	if err != nil {
		logger.Error("Database migration failed", err)
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
