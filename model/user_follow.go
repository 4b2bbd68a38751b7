package model

import "time"

/*
UserFollow is a "many-to-many" relation of a user following another user

FollowerID: the user who follows
FolloweeID: the user being followed
CreatedAt: time when relation is created
*/
type UserFollow struct {
	FollowerID string `gorm:"primaryKey"`
	FolloweeID string `gorm:"primaryKey"`
	CreatedAt  time.Time
}
