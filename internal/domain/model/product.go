package model

import "time"

type Availability string

const (
	AvailabilityInStock    Availability = "IN_STOCK"
	AvailabilityOutOfStock Availability = "OUT_OF_STOCK"
	AvailabilityPreorder   Availability = "PREORDER"
	AvailabilityBackorder  Availability = "BACKORDER"
)

const (
	DefaultCategory     = "Uncategorized"
	DefaultCurrencyCode = "USD"
)

// 商品。bootstrap時に一度だけ作られ、アプリからは更新しない。
type Product struct {
	ID           string       `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Title        string       `gorm:"type:text;not null" json:"title"`
	Category     string       `gorm:"type:text;not null" json:"category"`
	Price        float64      `gorm:"not null" json:"price"`
	CurrencyCode string       `gorm:"type:varchar(8);not null" json:"currency_code"`
	ImageURL     string       `gorm:"type:text;not null" json:"image_url"`
	Availability Availability `gorm:"type:varchar(32);not null" json:"availability"`
	CreatedAt    time.Time    `gorm:"not null;autoCreateTime" json:"-"`
}
