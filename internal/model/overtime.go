package model

import "time"

// Overtime represents overtime booked against a shift. The shift id is the
// primary key, so a shift can carry at most one overtime record.
type Overtime struct {
	ShiftID   uint      `json:"shift_id" gorm:"primaryKey"`
	Type      string    `json:"type" gorm:"size:50"`
	Hours     int       `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Placeholder columns kept for schema compatibility.
	FieldA *string `json:"field_A" gorm:"column:field_A;size:35"`
	FieldB *string `json:"field_B" gorm:"column:field_B;size:35"`
	FieldC *string `json:"field_C" gorm:"column:field_C;size:35"`
	FieldD *string `json:"field_D" gorm:"column:field_D;size:35"`
	FieldE *string `json:"field_E" gorm:"column:field_E;size:35"`
}

// TableName overrides the default table name.
func (Overtime) TableName() string {
	return "overtimes"
}
