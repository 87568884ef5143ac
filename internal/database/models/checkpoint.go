package models

// Checkpoint is a point-bearing catalog entry with optional coordinates
// and an optional parent challenge. Coordinates are nil when the source
// GPS string could not be parsed during import.
type Checkpoint struct {
	Name        string   `json:"name" gorm:"column:name;primaryKey"`
	Description string   `json:"description" gorm:"column:description;not null"`
	Points      int      `json:"points" gorm:"column:points;not null"`
	Latitude    *float64 `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude   *float64 `json:"longitude,omitempty" gorm:"column:longitude"`
	Challenge   string   `json:"challenge" gorm:"column:challenge"`
}

// TableName returns the table name for Checkpoint
func (Checkpoint) TableName() string {
	return "checkpoints"
}
