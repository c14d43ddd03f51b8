package models

// FoodBank is static reference data for the donation page. DistanceTenths is
// miles scaled by 10 to avoid floating-point storage.
type FoodBank struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Hours          string `json:"hours"`
	DistanceTenths int    `json:"distance_tenths"`
}

// NearbyUser is static reference data for the sharing page, same distance
// encoding as FoodBank.
type NearbyUser struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	AvatarURL      string `json:"avatar_url"`
	DistanceTenths int    `json:"distance_tenths"`
}
