package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSeller   Role = "seller"
	RoleBuyer    Role = "buyer"
	RoleGraduate Role = "graduate"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleBuyer, RoleGraduate:
		return true
	}
	return false
}

type User struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:120;not null"`
	Email    string `gorm:"size:255;uniqueIndex;not null"`
	// Stored as submitted. No hashing anywhere in the system; see the
	// known-defects section of DESIGN.md before reusing this model.
	Password  string    `gorm:"size:255;not null"`
	Role      Role      `gorm:"size:16;not null;default:buyer"`
	WhatsApp  string    `gorm:"column:whatsapp;size:32"`
	Location  string    `gorm:"size:120"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
