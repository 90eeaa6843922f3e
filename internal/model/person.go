package model

import "time"

// Person represents an employee whose shifts are tracked.
type Person struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string     `json:"first_name" gorm:"size:35"`
	LastName   string     `json:"last_name" gorm:"size:35"`
	JobRole    *string    `json:"job_role" gorm:"size:35"`
	Birthday   *time.Time `json:"birthday"`
	DisplayTag string     `json:"display_tag" gorm:"size:8;uniqueIndex"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Placeholder columns kept for schema compatibility.
	FieldA *string `json:"field_A" gorm:"column:field_A;size:35"`
	FieldB *string `json:"field_B" gorm:"column:field_B;size:35"`
	FieldC *string `json:"field_C" gorm:"column:field_C;size:35"`
	FieldD *string `json:"field_D" gorm:"column:field_D;size:35"`
	FieldE *string `json:"field_E" gorm:"column:field_E;size:35"`
}

// TableName overrides the default table name.
func (Person) TableName() string {
	return "persons"
}
