package models

// Recipe is seeded reference data, read-only to end users. Rating is stored
// as tenths (0-50) so 4.5 stars is 45.
type Recipe struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	PrepTimeMins int            `json:"prep_time_mins"`
	ImageURL     string         `json:"image_url"`
	Ingredients  IngredientList `gorm:"type:text" json:"ingredients"`
	Instructions string         `json:"instructions"`
	Rating       int            `json:"rating"`
}
