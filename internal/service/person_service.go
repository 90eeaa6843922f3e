package service

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/repository"
)

// displayTagMaxAttempts bounds the collision retry loop; exhaustion surfaces
// as an internal error.
const displayTagMaxAttempts = 10

// PersonService handles person operations.
type PersonService interface {
	CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error)
	GetPerson(ctx context.Context, id uint) (*model.Person, error)
	ListPersons(ctx context.Context, searchString, sortBy, orderType string) ([]model.Person, error)
	UpdatePerson(ctx context.Context, id uint, firstName, lastName string, jobRole *string, birthday *time.Time) error
	DeletePerson(ctx context.Context, id uint) error
	ListShiftsForPerson(ctx context.Context, personID uint, startDate, endDate *time.Time, sortBy, orderType string) ([]model.ShiftWithPerson, error)
}

type personService struct {
	persons repository.PersonRepository
	shifts  repository.ShiftRepository
	log     zerolog.Logger
}

// NewPersonService creates a new person service.
func NewPersonService(persons repository.PersonRepository, shifts repository.ShiftRepository, log zerolog.Logger) PersonService {
	return &personService{
		persons: persons,
		shifts:  shifts,
		log:     log,
	}
}

// CreatePerson allocates a unique display tag and persists the person.
func (s *personService) CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	tag, err := s.generateDisplayTag(ctx, person.FirstName, person.LastName)
	if err != nil {
		return nil, err
	}
	person.DisplayTag = tag

	if err := s.persons.Create(ctx, person); err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("person_id", person.ID).
		Str("display_tag", person.DisplayTag).
		Msg("person created")
	return person, nil
}

// generateDisplayTag derives a tag from the name plus a random 3-digit
// suffix and retries on collision. The first candidate is lowercased;
// retried candidates keep the prefix casing as the names were given.
func (s *personService) generateDisplayTag(ctx context.Context, firstName, lastName string) (string, error) {
	prefix := namePrefix(firstName, lastName)

	for attempt := 0; attempt < displayTagMaxAttempts; attempt++ {
		tag := prefix + strconv.Itoa(randomTagSuffix())
		if attempt == 0 {
			tag = strings.ToLower(tag)
		}

		exists, err := s.persons.DisplayTagExists(ctx, tag)
		if err != nil {
			return "", err
		}
		if !exists {
			return tag, nil
		}
	}

	return "", apperrors.ErrDisplayTagExhausted
}

// namePrefix takes up to the first 3 runes of the first name and up to the
// first 2 of the last name.
func namePrefix(firstName, lastName string) string {
	first := []rune(firstName)
	if len(first) > 3 {
		first = first[:3]
	}
	last := []rune(lastName)
	if len(last) > 2 {
		last = last[:2]
	}
	return string(first) + string(last)
}

func randomTagSuffix() int {
	return rand.Intn(900) + 100
}

// GetPerson retrieves a person by ID.
func (s *personService) GetPerson(ctx context.Context, id uint) (*model.Person, error) {
	person, err := s.persons.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

// ListPersons returns the full filtered, sorted person set.
func (s *personService) ListPersons(ctx context.Context, searchString, sortBy, orderType string) ([]model.Person, error) {
	order, err := orderFrom(personSortColumns, sortBy, orderType)
	if err != nil {
		return nil, err
	}
	return s.persons.List(ctx, repository.PersonQuery{
		SearchString: searchString,
		Order:        order,
	})
}

// UpdatePerson replaces the editable fields in place. The display tag is
// never touched.
func (s *personService) UpdatePerson(ctx context.Context, id uint, firstName, lastName string, jobRole *string, birthday *time.Time) error {
	if _, err := s.persons.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return err
	}

	return s.persons.UpdateFields(ctx, id, map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"job_role":   jobRole,
		"birthday":   birthday,
	})
}

// DeletePerson removes the person together with all owned shifts.
func (s *personService) DeletePerson(ctx context.Context, id uint) error {
	if _, err := s.persons.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return err
	}

	if err := s.persons.DeleteWithShifts(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("person_id", id).Msg("person deleted with owned shifts")
	return nil
}

// ListShiftsForPerson returns the person's shifts joined with their name,
// requiring the person to exist first.
func (s *personService) ListShiftsForPerson(ctx context.Context, personID uint, startDate, endDate *time.Time, sortBy, orderType string) ([]model.ShiftWithPerson, error) {
	if _, err := s.persons.FindByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, err
	}

	order, err := orderFrom(personShiftSortColumns, sortBy, orderType)
	if err != nil {
		return nil, err
	}

	return s.shifts.ListJoined(ctx, repository.ShiftQuery{
		PersonID:  &personID,
		StartDate: startDate,
		EndDate:   endDate,
		Order:     order,
	})
}
