package promotionservice

import "time"

// Promotion модель акции из PromotionService
type Promotion struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"` // Код акции, используется для поиска
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"` // Процент скидки (0-100)
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	MinHours        float64   `json:"minHours"` // 0 = без минимального порога
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
