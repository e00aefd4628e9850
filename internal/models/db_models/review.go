package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	EntryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating  int       `gorm:"not null"`
	Title   string    `gorm:"not null"`
	Comment string    `gorm:"not null"`
	UserID  *uuid.UUID `gorm:"type:uuid"`
}
