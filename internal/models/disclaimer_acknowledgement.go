package models

import (
	"time"
)

// DisclaimerAcknowledgement records that a visitor dismissed the legal notice
type DisclaimerAcknowledgement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VisitorID      string    `gorm:"type:varchar(64);uniqueIndex" json:"visitor_id"`
	AcknowledgedAt time.Time `gorm:"index" json:"acknowledged_at"`
}
