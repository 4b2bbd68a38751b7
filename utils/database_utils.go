// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"os"

	"github.com/blogmux/blogmux/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetDBConnection gets a connection to the database specified by env
func GetDBConnection() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// DatabaseSetupAndMigration sets up the join tables and migrates the schema.
// Must be called once at startup before any store is used.
func DatabaseSetupAndMigration(db *gorm.DB) {
	var err error

	err = db.SetupJoinTable(&model.User{}, "Favorites", &model.UserFavorite{})
	if err != nil {
		panic("failed to set up user favorites join table")
	}

	err = db.SetupJoinTable(&model.Article{}, "FavoritedBy", &model.UserFavorite{})
	if err != nil {
		panic("failed to set up article favorites join table")
	}

	err = db.SetupJoinTable(&model.User{}, "Following", &model.UserFollow{})
	if err != nil {
		panic("failed to set up user follows join table")
	}

	if err = db.AutoMigrate(
		&model.User{}, &model.Article{}, &model.ArticleLike{}, &model.Comment{},
	); err != nil {
		panic("failed to migrate database schema")
	}
}
