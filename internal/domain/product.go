package domain

// DefaultStock is the sentinel meaning "effectively unlimited".
const DefaultStock = 9999

type Product struct {
	ID              uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string   `json:"name" gorm:"not null"`
	Origin          string   `json:"origin"`
	Price           int64    `json:"price" gorm:"not null"`
	StrikePrice     int64    `json:"strikePrice,omitempty"`
	DiscountQty     int64    `json:"discountQty,omitempty"`
	DiscountPercent int64    `json:"discountPercent,omitempty"`
	Images          []string `json:"images" gorm:"serializer:json"`
	Stock           int64    `json:"stock" gorm:"default:9999"`
}
