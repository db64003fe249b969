package models

import (
	"gorm.io/gorm"
)

// Service is a bookable catalog entry. Duration is in whole minutes and must
// be a multiple of the configured slot granularity.
type Service struct {
	gorm.Model
	Name     string  `json:"name" gorm:"uniqueIndex;size:100"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // minutes
}
