package models

// Option catalog rows. These are read-only lookup tables that populate the
// selectable fields of the recipe submission form.

type Kitchen struct {
	ID   uint   `gorm:"primaryKey" json:"value"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"label"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"value"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"label"`
}

// Measure is a measurement unit. The "To taste" row is a sentinel label, not
// a numeric unit: lines using it carry no amount.
type Measure struct {
	ID   uint   `gorm:"primaryKey" json:"value"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"label"`
}

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"value"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"label"`
}
