package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemType тип бронируемой позиции: услуга или событие
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeEvent   ItemType = "event"
)

// ParseItemType конвертирует строку в ItemType
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypeService:
		return ItemTypeService, nil
	case ItemTypeEvent:
		return ItemTypeEvent, nil
	default:
		return "", fmt.Errorf("unknown item type %q", s)
	}
}

// IsValid проверяет, что тип позиции допустим
func (t ItemType) IsValid() bool {
	return t == ItemTypeService || t == ItemTypeEvent
}

// Item бронируемая позиция каталога (услуга или событие).
// Каталогом управляет отдельный контур, движок бронирований читает позиции как есть.
type Item struct {
	ID                      int64
	Type                    ItemType
	Title                   string
	Provider                string
	Price                   decimal.Decimal
	ProviderDiscountPercent decimal.Decimal // 0-100
	IsPremiumOnly           bool
	ImageURL                *string
}
