package model

import "time"

// Audit action tags recorded by admin-mediated operations.
const (
	AuditActionVerifyPayment      = "VERIFY_PAYMENT"
	AuditActionUpdateDispute      = "UPDATE_DISPUTE"
	AuditActionDeleteUser         = "DELETE_USER"
	AuditActionAdminDeleteProduct = "ADMIN_DELETE_PRODUCT"
	AuditActionUpdateConfig       = "UPDATE_CONFIG"
)

// AuditLog rows are append-only. Nothing updates or deletes them and no
// route exposes a write besides the internal append.
type AuditLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AdminID   uint64    `gorm:"column:admin_id;index"`
	Action    string    `gorm:"size:64;not null"`
	EntityID  string    `gorm:"column:entity_id;size:64"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
