package models

// Setting adalah key-value sederhana (mongodb_uri, menu_categories, dll).
type Setting struct {
	Key   string `gorm:"primaryKey;size:120" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
