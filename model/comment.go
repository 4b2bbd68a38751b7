package model

import "time"

/*
Comment is a piece of free text a user leaves on an article

Id: primary key, uuid string
ArticleID: the owning article, "belongs-to" relation
AuthorID: the user who wrote the comment, immutable after creation. Only

	the author may delete the comment.

Text: comment body
CreatedAt: insertion time, comments are read newest-first
*/
type Comment struct {
	Id        string    `gorm:"primaryKey" json:"id"`
	ArticleID string    `gorm:"index" json:"-"`
	AuthorID  string    `gorm:"index" json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}
