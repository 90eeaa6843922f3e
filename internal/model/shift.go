package model

import "time"

// Shift represents a work period assigned to a person.
type Shift struct {
	ID        uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Comment   *string    `json:"comment" gorm:"size:100"`
	PersonID  uint       `json:"person_id" gorm:"not null;index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Placeholder columns kept for schema compatibility.
	FieldA *string `json:"field_A" gorm:"column:field_A;size:35"`
	FieldB *string `json:"field_B" gorm:"column:field_B;size:35"`
	FieldC *string `json:"field_C" gorm:"column:field_C;size:35"`
	FieldD *string `json:"field_D" gorm:"column:field_D;size:35"`
	FieldE *string `json:"field_E" gorm:"column:field_E;size:35"`
}

// TableName overrides the default table name.
func (Shift) TableName() string {
	return "shifts"
}

// TimeWorked is the derived length of the shift. It is never persisted.
func (s *Shift) TimeWorked() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// ShiftWithPerson is the read projection of a shift joined with the owning
// person's names. Column aliases follow the shifts table; first_name and
// last_name come from persons.
type ShiftWithPerson struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Comment   *string   `json:"comment"`
	PersonID  uint      `json:"person_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FieldA *string `json:"field_A" gorm:"column:field_A"`
	FieldB *string `json:"field_B" gorm:"column:field_B"`
	FieldC *string `json:"field_C" gorm:"column:field_C"`
	FieldD *string `json:"field_D" gorm:"column:field_D"`
	FieldE *string `json:"field_E" gorm:"column:field_E"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
