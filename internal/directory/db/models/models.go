// Package models contains the persistence models for the directory,
// configured to work using GORM as the ORM.
package models

import (
	"time"
)

// Document is stored inside the subcontractor row as a JSON array.
type Document struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

// Trade is a shared reference-catalog row, never owned by a
// subcontractor. Deleting a trade only removes junction rows.
type Trade struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
}

func (Trade) TableName() string {
	return "trades"
}

// Employee is exclusively owned by its subcontractor; the owning row's
// deletion cascades here.
type Employee struct {
	ID              uint   `gorm:"primaryKey"`
	SubcontractorID uint   `gorm:"not null;index"`
	Name            string `gorm:"size:255;not null"`
	JobTitle        string `gorm:"size:255"`
	Mobile          string `gorm:"size:20"`
	Email           string `gorm:"size:255"`
	ProfilePicture  string `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// Subcontractor is the aggregate root. The unique index on Slug is the
// actual uniqueness guarantee; the resolver's probe loop is only an
// optimization on top of it.
type Subcontractor struct {
	ID                    uint       `gorm:"primaryKey"`
	Name                  string     `gorm:"size:255;not null"`
	ABN                   string     `gorm:"column:abn;size:11;not null"`
	Slug                  string     `gorm:"size:255;not null;uniqueIndex"`
	Mobile                string     `gorm:"size:20"`
	Email                 string     `gorm:"size:255"`
	Logo                  string     `gorm:"size:255"`
	Documents             []Document `gorm:"serializer:json"`
	CurrentStep           int        `gorm:"not null;default:1"`
	MainContactEmployeeID *uint      `gorm:"index"`
	Employees             []Employee `gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
	Trades                []Trade    `gorm:"many2many:subcontractor_trade;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Subcontractor) TableName() string {
	return "subcontractors"
}
