package db_models

// Category groups entries; the slug is what the public API filters by.
type Category struct {
	BaseModel
	Slug        string `gorm:"unique;not null"`
	Name        string `gorm:"not null"`
	Description string
	Entries     []Entry `gorm:"foreignKey:CategoryID"`
}
