package models

// Challenge is a point-bearing catalog entry, keyed by unique name.
type Challenge struct {
	Name        string `json:"name" gorm:"column:name;primaryKey"`
	Description string `json:"description" gorm:"column:description;not null"`
	Category    string `json:"category" gorm:"column:category;not null"`
	Points      int    `json:"points" gorm:"column:points;not null"`
}

// TableName returns the table name for Challenge
func (Challenge) TableName() string {
	return "challenges"
}
