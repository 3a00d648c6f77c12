package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The package columns are a snapshot
// copied from the chosen offer detail at creation time; there is no foreign
// key back to offers so deleting an offer leaves its orders intact.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Features           StringList      `gorm:"type:jsonb;not null"`
	OfferType          string          `gorm:"type:varchar(20);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
