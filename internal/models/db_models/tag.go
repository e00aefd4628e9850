package db_models

type Tag struct {
	BaseModel
	Label   string  `gorm:"unique;not null"`
	Entries []Entry `gorm:"many2many:entry_tags"`
}
