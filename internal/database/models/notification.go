package models

// Notification is a broadcast message with no identity attached.
type Notification struct {
	Text string `json:"text" gorm:"column:text;not null"`
	Type string `json:"type" gorm:"column:type"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
