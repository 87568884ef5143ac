package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ActionType enumerates the kinds of posts
type ActionType string

const (
	ActionTypeChallenge  ActionType = "challenge"
	ActionTypeCheckpoint ActionType = "checkpoint"
	ActionTypeStory      ActionType = "story"
)

// Valid reports whether the action type is one of the known kinds.
func (a ActionType) Valid() bool {
	switch a {
	case ActionTypeChallenge, ActionTypeCheckpoint, ActionTypeStory:
		return true
	}
	return false
}

// Scored reports whether posts of this type carry points.
func (a ActionType) Scored() bool {
	return a == ActionTypeChallenge || a == ActionTypeCheckpoint
}

// FileRef is one attached file: a storage path plus its MIME type.
type FileRef struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// FileList is the ordered file manifest of a post. It is persisted as a
// JSON array in a text column; the on-disk representation is kept for
// compatibility with existing databases.
type FileList []FileRef

// Value implements driver.Valuer
func (f FileList) Value() (driver.Value, error) {
	if f == nil {
		f = FileList{}
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode file list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (f *FileList) Scan(value interface{}) error {
	if value == nil {
		*f = FileList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported file list column type %T", value)
	}

	if len(data) == 0 {
		*f = FileList{}
		return nil
	}
	return json.Unmarshal(data, f)
}

// Post represents a submitted story, challenge completion or checkpoint
// visit, possibly with attached media.
type Post struct {
	PostID     string     `json:"post_id" gorm:"column:post_id;primaryKey"`
	PaxID      string     `json:"pax_id" gorm:"column:pax_id;not null"`
	TeamID     string     `json:"team_id" gorm:"column:team_id"`
	ActionType ActionType `json:"action_type" gorm:"column:action_type;not null"`
	ActionName string     `json:"action_name" gorm:"column:action_name;not null"`
	Comment    string     `json:"comment" gorm:"column:comment;not null"`
	Created    string     `json:"created" gorm:"column:created;not null"`
	Files      FileList   `json:"files" gorm:"column:files;not null;type:text"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}
