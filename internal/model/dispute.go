package model

import "time"

type DisputeStatus string

const (
	DisputeStatusOpen        DisputeStatus = "open"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusResolved    DisputeStatus = "resolved"
	DisputeStatusRejected    DisputeStatus = "rejected"
)

func (s DisputeStatus) Valid() bool {
	switch s {
	case DisputeStatusOpen, DisputeStatusUnderReview, DisputeStatusResolved, DisputeStatusRejected:
		return true
	}
	return false
}

func (s DisputeStatus) Terminal() bool {
	return s == DisputeStatusResolved || s == DisputeStatusRejected
}

type Dispute struct {
	ID              uint64        `gorm:"primaryKey;autoIncrement"`
	PaymentID       uint64        `gorm:"column:payment_id;index;not null"`
	CreatorID       uint64        `gorm:"column:creator_id;index;not null"`
	Reason          string        `gorm:"type:text;not null"`
	Status          DisputeStatus `gorm:"size:16;not null;default:open"`
	ResolutionNotes string        `gorm:"column:resolution_notes;type:text"`
	CreatedAt       time.Time     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime"`
}

func (Dispute) TableName() string {
	return "disputes"
}
