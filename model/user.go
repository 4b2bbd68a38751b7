package model

import "time"

/*
User is a registered account of the platform

Id: primary key, uuid string
CreatedAt: time when the account is registered
UpdatedAt: time when the profile is last edited

Username: display name, unique across the platform
Email: login identity, unique across the platform
PasswordHash: bcrypt hash of the password, never serialized
Bio: free-text profile description
Image: avatar url

Following: users this user follows, "many-to-many" relation
Favorites: articles this user has liked, "many-to-many" relation maintained

	by the like toggle
*/
type User struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	Image        string    `json:"image"`

	Following []*User    `json:"-" gorm:"many2many:user_follows;joinForeignKey:FollowerID;joinReferences:FolloweeID"`
	Favorites []*Article `json:"-" gorm:"many2many:user_favorites;"`
}
