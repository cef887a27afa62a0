package domain

import "time"

// Promotion акция со скидкой на бронирования
// Name используется как код акции при поиске: это человекочитаемый
// уникальный ключ, а не surrogate id
type Promotion struct {
	ID              int64
	Name            string
	Description     string
	DiscountPercent float64 // Процент скидки (0-100)
	ValidFrom       time.Time
	ValidTo         time.Time
	MinHours        float64 // Минимальная длительность бронирования в часах, 0 = без порога

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMinHours returns true if the promotion requires a minimum duration
func (p *Promotion) HasMinHours() bool {
	return p.MinHours > 0
}
