package model

import "time"

// User represents a member of the workgroup directory.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Bio          string    `json:"bio,omitempty" gorm:"size:100"`
	Profile      []byte    `json:"profile,omitempty" gorm:"type:blob"`
	Resume       []byte    `json:"resume,omitempty" gorm:"type:blob"`
	CreatedAt    time.Time `json:"created_at"`
}
