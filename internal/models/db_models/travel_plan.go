package db_models

import (
	"gorm.io/datatypes"
)

// TravelPlan is insert-only: the pipeline creates a record once per slug and
// never updates it afterwards.
type TravelPlan struct {
	BaseModel
	Slug        string `gorm:"uniqueIndex"` // e.g. "lisbon-tour-3-days"
	Destination string
	Days        int
	Description string
	Gastronomy  string
	SmartTravel string
	BudgetMin   float64
	BudgetMax   float64
	Highlights  datatypes.JSON `gorm:"type:jsonb"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb"`
	Image       string
}
