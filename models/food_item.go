package models

import "time"

// Category is the closed set of food categories.
type Category string

const (
	CategoryDairy     Category = "Dairy"
	CategoryMeat      Category = "Meat"
	CategorySeafood   Category = "Seafood"
	CategoryProduce   Category = "Produce"
	CategoryGrains    Category = "Grains"
	CategoryBakery    Category = "Bakery"
	CategoryFrozen    Category = "Frozen"
	CategoryBeverages Category = "Beverages"
	CategorySnacks    Category = "Snacks"
	CategoryOther     Category = "Other"
)

// Unit is the closed set of quantity units.
type Unit string

const (
	UnitPieces     Unit = "pcs"
	UnitGrams      Unit = "g"
	UnitKilograms  Unit = "kg"
	UnitLitres     Unit = "L"
	UnitMillilitre Unit = "ml"
	UnitOunces     Unit = "oz"
	UnitPounds     Unit = "lb"
)

var validCategories = map[Category]bool{
	CategoryDairy: true, CategoryMeat: true, CategorySeafood: true,
	CategoryProduce: true, CategoryGrains: true, CategoryBakery: true,
	CategoryFrozen: true, CategoryBeverages: true, CategorySnacks: true,
	CategoryOther: true,
}

var validUnits = map[Unit]bool{
	UnitPieces: true, UnitGrams: true, UnitKilograms: true,
	UnitLitres: true, UnitMillilitre: true, UnitOunces: true, UnitPounds: true,
}

func (c Category) Valid() bool { return validCategories[c] }
func (u Unit) Valid() bool     { return validUnits[u] }

// FoodItem is a perishable item in a user's inventory. UserID and AddedDate
// are assigned server-side and never taken from client input.
type FoodItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Name       string    `gorm:"not null" json:"name"`
	Category   Category  `gorm:"not null" json:"category"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Unit       Unit      `gorm:"not null" json:"unit"`
	ExpiryDate time.Time `gorm:"index;not null" json:"expiry_date"`
	Favorite   bool      `json:"favorite"`
	AddedDate  time.Time `json:"added_date"`
}
