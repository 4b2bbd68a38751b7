package model

import (
	"time"

	"gorm.io/datatypes"
)

/*
Article is a piece of writing published by a user

Id: primary key, uuid string
CreatedAt: time when entity is created
UpdatedAt: time when entity is last mutated

Slug: url-safe unique identifier derived from the title at creation time,

	never recomputed on update

Title, Description, Body: the owner-mutable content fields
TagList: ordered tag strings, stored as a JSON array column

AuthorID:
Author: the one user owning this article, "belongs-to" relation. Only the

	author may mutate or delete the article.

Likes: like rows for this article, at most one per user
Comments: comments on this article, read newest-first
FavoritesCount: not persisted, computed from the like rows at render time

Version: write-set guard, bumped on every content update. A save whose

	loaded version no longer matches is rejected as a conflict.
*/
type Article struct {
	Id          string         `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Slug        string         `gorm:"uniqueIndex" json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Body        string         `json:"body"`
	TagList     datatypes.JSON `json:"tagList"`

	AuthorID string `gorm:"index" json:"author"`
	Author   User   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Likes          []ArticleLike `json:"likes" gorm:"foreignKey:ArticleID"`
	Comments       []Comment     `json:"comments" gorm:"foreignKey:ArticleID"`
	FavoritedBy    []*User       `json:"-" gorm:"many2many:user_favorites;"`
	FavoritesCount int64         `gorm:"-" json:"favoritesCount"`

	Version int `json:"-"`
}
