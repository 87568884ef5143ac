package models

// Location is one append-only track point. History is never updated or
// deleted; the freshest point per team is found by ordering on date.
// Accuracy and friends stay as free text, matching what browser geo APIs
// deliver.
type Location struct {
	Username         string  `json:"username" gorm:"column:username;not null"`
	TeamID           string  `json:"team_id" gorm:"column:team_id"`
	Comment          string  `json:"comment" gorm:"column:comment"`
	Longitude        float64 `json:"longitude" gorm:"column:longitude;not null"`
	Latitude         float64 `json:"latitude" gorm:"column:latitude;not null"`
	Accuracy         string  `json:"accuracy" gorm:"column:accuracy"`
	Altitude         string  `json:"altitude" gorm:"column:altitude"`
	AltitudeAccuracy string  `json:"altitude_accuracy" gorm:"column:altitude_accuracy"`
	Heading          string  `json:"heading" gorm:"column:heading"`
	Speed            string  `json:"speed" gorm:"column:speed"`
	Date             string  `json:"date" gorm:"column:date;not null"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
