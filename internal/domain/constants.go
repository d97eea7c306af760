package domain

// Скидки по уровням подписки (в процентах)
const (
	TierFreeDiscountPercent    = 0
	TierBasicDiscountPercent   = 10
	TierPremiumDiscountPercent = 20
)

// Business validation constants
const (
	MaxCouponCodeLength = 50
	MinPaymentAmount    = 1      // минимальная сумма платежа в minor units
	DefaultMaxAmount    = 999999 // потолок суммы платежа в основной валюте
	DefaultCurrency     = "usd"
)

// RewardPrefixes словарь префиксов для генерации наградных промокодов
var RewardPrefixes = []string{"ZUMI", "PET", "SAVE", "LUCKY", "BONUS", "VIP"}

// RewardDiscounts допустимые значения скидки наградного промокода (в процентах)
var RewardDiscounts = []int{10, 15, 20, 25, 30}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
