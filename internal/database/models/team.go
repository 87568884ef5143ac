package models

// Team represents a 1-2 member competing unit. Member1 is required,
// Member2 is optional (NULL when racing solo), Member3 is reserved and
// unused by current logic.
type Team struct {
	TeamID             string  `json:"team_id" gorm:"column:team_id;primaryKey"`
	TeamName           string  `json:"team_name" gorm:"column:team_name;not null"`
	Member1            string  `json:"member1" gorm:"column:member1;not null"`
	Member2            *string `json:"member2,omitempty" gorm:"column:member2"`
	Member3            *string `json:"member3,omitempty" gorm:"column:member3"`
	TeamMotto          string  `json:"team_motto" gorm:"column:team_motto"`
	TeamWeb            string  `json:"team_web" gorm:"column:team_web"`
	TeamPhoto          string  `json:"team_photo" gorm:"column:team_photo"`
	LocationVisibility bool    `json:"location_visibility" gorm:"column:location_visibility;default:1"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasMember reports whether the participant is member1 or member2.
func (t *Team) HasMember(paxID string) bool {
	if t.Member1 == paxID {
		return true
	}
	return t.Member2 != nil && *t.Member2 == paxID
}

// TeammateOf returns the other member's id, or nil for a solo team.
func (t *Team) TeammateOf(paxID string) *string {
	if t.Member1 != paxID {
		m := t.Member1
		return &m
	}
	return t.Member2
}
