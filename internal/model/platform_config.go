package model

import (
	"strings"
	"time"
)

// PlatformConfig is a singleton row holding payout instructions and
// public contact info. The first read creates it with these defaults.
type PlatformConfig struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	PaymentNumber   string    `gorm:"column:payment_number;size:32"`
	Methods         string    `gorm:"size:255"`
	ContactEmail    string    `gorm:"column:contact_email;size:255"`
	ContactWhatsApp string    `gorm:"column:contact_whatsapp;size:32"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (PlatformConfig) TableName() string {
	return "platform_config"
}

const DefaultPaymentNumber = "0778606878"

var DefaultPaymentMethods = []string{"EcoCash", "InnBucks", "Mukuru"}

func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		PaymentNumber: DefaultPaymentNumber,
		Methods:       strings.Join(DefaultPaymentMethods, ","),
	}
}

func (c *PlatformConfig) MethodList() []string {
	if c.Methods == "" {
		return []string{}
	}
	parts := strings.Split(c.Methods, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
