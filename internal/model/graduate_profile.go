package model

import (
	"strings"
	"time"
)

// GraduateProfile is one-to-one with a user; writes go through an upsert
// keyed by user_id.
type GraduateProfile struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"column:user_id;uniqueIndex;not null"`
	UserName        string    `gorm:"column:user_name;size:120;not null"`
	Degree          string    `gorm:"size:120;not null"`
	Institution     string    `gorm:"size:120;not null"`
	Year            int       `gorm:"not null"`
	Bio             string    `gorm:"type:text"`
	Skills          string    `gorm:"type:text"`
	Approved        bool      `gorm:"not null;default:false"`
	ContactEmail    string    `gorm:"column:contact_email;size:255"`
	ContactWhatsApp string    `gorm:"column:contact_whatsapp;size:32"`
	CertificateURL  string    `gorm:"column:certificate_url;size:512"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (GraduateProfile) TableName() string {
	return "graduate_profiles"
}

// SkillList splits the stored comma-joined skills column.
func (g *GraduateProfile) SkillList() []string {
	if g.Skills == "" {
		return []string{}
	}
	parts := strings.Split(g.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinList normalizes a string slice into the comma-joined column format
// used for skills and payment methods.
func JoinList(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ",")
}
