package models

// Participant represents one registered competitor as delivered by the
// commerce roster. Login-account fields (username, role) live in the
// accounts store and are overlaid by the identity resolver, not here.
type Participant struct {
	ID               string `json:"id" gorm:"column:id;primaryKey"`
	Email            string `json:"email" gorm:"column:email;not null"`
	NameWeb          string `json:"name_web" gorm:"column:name_web;not null"`
	Bio              string `json:"bio" gorm:"column:bio"`
	EmergencyContact string `json:"emergency_contact" gorm:"column:emergency_contact"`
	Photo            string `json:"photo" gorm:"column:photo"`
}

// TableName returns the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
