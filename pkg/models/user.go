package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Name      string    `gorm:"not null" bson:"name" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" bson:"email" json:"email"`
	Role      string    `gorm:"type:varchar(32);not null" bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type UserSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
