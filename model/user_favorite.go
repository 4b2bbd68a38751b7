package model

import "time"

/*
UserFavorite is a "many-to-many" relation of a user favoriting an article.
Rows are created and removed by the like toggle only.

UserID: user id
ArticleID: article id
CreatedAt: time when relation is created
*/
type UserFavorite struct {
	UserID    string `gorm:"primaryKey"`
	ArticleID string `gorm:"primaryKey"`
	CreatedAt time.Time
}
