package model

import "time"

// Customer holds contact data only. Sales and dues reference customers by
// name, not by this row's id — renames are therefore restricted while the
// customer has an outstanding due (see DuesService).
type Customer struct {
	ID             uint   `gorm:"primaryKey"`
	FullName       string `gorm:"index;not null"`
	WhatsappNumber string `gorm:"not null"`
	PhoneNumber    string `gorm:"index;not null"`
	Address        string `gorm:"not null"`
	CreatedAt      time.Time
}
