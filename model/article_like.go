package model

import "time"

/*
ArticleLike is a "many-to-many" relation of a user liking an article

ArticleID: article id, part of the composite primary key
UserID: user id, part of the composite primary key
CreatedAt: time when the like is toggled on

The composite primary key enforces set semantics: a given (article, user)
pair exists at most once.
*/
type ArticleLike struct {
	ArticleID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"primaryKey" json:"user"`
	CreatedAt time.Time `json:"-"`
}
