package model

import "github.com/shopspring/decimal"

// Employee represents a workgroup staff record.
type Employee struct {
	ID     uint            `json:"id" gorm:"primaryKey"`
	Name   string          `json:"name" gorm:"size:255;not null"`
	Role   string          `json:"role" gorm:"size:255;not null"`
	Salary decimal.Decimal `json:"salary" gorm:"type:decimal(12,2)"`
}
