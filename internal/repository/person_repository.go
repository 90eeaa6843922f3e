package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftbook/internal/model"
)

// PersonQuery carries the composed listing criteria for persons.
type PersonQuery struct {
	SearchString string
	Order        *Order
}

// PersonRepository defines person persistence operations.
type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	FindByID(ctx context.Context, id uint) (*model.Person, error)
	List(ctx context.Context, q PersonQuery) ([]model.Person, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteWithShifts(ctx context.Context, id uint) error
	DisplayTagExists(ctx context.Context, tag string) (bool, error)
}

type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository builds a GORM-backed repository.
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) FindByID(ctx context.Context, id uint) (*model.Person, error) {
	var person model.Person
	if err := r.db.WithContext(ctx).First(&person, id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// List materializes the full filtered result set; pagination happens on the
// returned slice.
func (r *personRepository) List(ctx context.Context, q PersonQuery) ([]model.Person, error) {
	tx := r.db.WithContext(ctx).Model(&model.Person{})
	if q.SearchString != "" {
		tx = tx.Scopes(NameSearch(q.SearchString, "persons"))
	}
	tx = tx.Scopes(Sorted(q.Order))

	var persons []model.Person
	if err := tx.Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

// UpdateFields replaces the given columns in place. display_tag is never part
// of an update.
func (r *personRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Person{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteWithShifts removes the person together with all owned shifts in one
// transaction. Overtime rows hanging off those shifts are left behind.
func (r *personRepository) DeleteWithShifts(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&model.Shift{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Person{}, id).Error
	})
}

func (r *personRepository) DisplayTagExists(ctx context.Context, tag string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Person{}).
		Where("display_tag = ?", tag).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
