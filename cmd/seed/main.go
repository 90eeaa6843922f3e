package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shiftbook/internal/config"
	"shiftbook/internal/db"
	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/logger"
	"shiftbook/internal/model"
	"shiftbook/internal/repository"
	"shiftbook/internal/service"
)

var firstNames = []string{
	"Darth", "Obi-Wan", "Anakin", "Leia", "Kylo", "Boba", "Han", "Ahsoka", "Luke",
}

var lastNames = []string{
	"Vader", "Kenobi", "Skywalker", "Organa", "Ren", "Fett", "Solo", "Tano",
}

var jobRoles = []string{
	"Bartender", "Kock", "Servitör", "Chef", "Hovmästare", "Bagare",
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv)
	log.Info().Msg("starting seed script")

	size := 20
	if v := os.Getenv("SEED_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(&model.Person{}, &model.Shift{}, &model.Overtime{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	personRepo := repository.NewPersonRepository(gormDB)
	shiftRepo := repository.NewShiftRepository(gormDB)
	overtimeRepo := repository.NewOvertimeRepository(gormDB)

	personService := service.NewPersonService(personRepo, shiftRepo, log)
	shiftService := service.NewShiftService(shiftRepo, log)
	overtimeService := service.NewOvertimeService(overtimeRepo, shiftRepo)

	ctx := context.Background()

	personIDs := seedPersons(ctx, log, personService, size)
	shiftIDs := seedShifts(ctx, log, shiftService, personIDs)
	seedOvertimes(ctx, log, overtimeService, shiftIDs)

	log.Info().
		Int("persons", len(personIDs)).
		Int("shifts", len(shiftIDs)).
		Msg("seed complete")
}

func seedPersons(ctx context.Context, log zerolog.Logger, persons service.PersonService, size int) []uint {
	ids := make([]uint, 0, size)
	for i := 0; i < size; i++ {
		role := jobRoles[rand.Intn(len(jobRoles))]
		birthday := time.Date(1970+rand.Intn(40), time.Month(1+rand.Intn(12)), 1+rand.Intn(28), 0, 0, 0, 0, time.UTC)

		person := &model.Person{
			FirstName: firstNames[rand.Intn(len(firstNames))],
			LastName:  lastNames[rand.Intn(len(lastNames))],
			JobRole:   &role,
			Birthday:  &birthday,
			FieldA:    placeholderValue(),
			FieldB:    placeholderValue(),
		}
		created, err := persons.CreatePerson(ctx, person)
		if err != nil {
			log.Error().Err(err).Msg("seed person")
			continue
		}
		ids = append(ids, created.ID)
	}
	return ids
}

func seedShifts(ctx context.Context, log zerolog.Logger, shifts service.ShiftService, personIDs []uint) []uint {
	ids := make([]uint, 0, len(personIDs))
	for i, personID := range personIDs {
		day := time.Date(2024, time.January, 1+rand.Intn(180), 0, 0, 0, 0, time.UTC)
		shift := &model.Shift{
			StartTime: day.Add(8 * time.Hour),
			EndTime:   day.Add(17 * time.Hour),
			PersonID:  personID,
		}
		if err := shifts.CreateShift(ctx, shift); err != nil {
			log.Error().Err(err).Msg("seed shift")
			continue
		}
		ids = append(ids, shift.ID)

		// every 3rd person also gets a commented swap shift
		if i%3 == 0 {
			comment := "Bytte pass med Anakin"
			swap := &model.Shift{
				StartTime: day.AddDate(0, 1, 0).Add(10 * time.Hour),
				EndTime:   day.AddDate(0, 1, 0).Add(19 * time.Hour),
				Comment:   &comment,
				PersonID:  personID,
			}
			if err := shifts.CreateShift(ctx, swap); err != nil {
				log.Error().Err(err).Msg("seed swap shift")
				continue
			}
			ids = append(ids, swap.ID)
		}
	}

	// An inverted time range must be rejected by the service.
	if len(personIDs) > 0 {
		bad := &model.Shift{
			StartTime: time.Date(2024, time.April, 5, 18, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, time.April, 5, 2, 0, 0, 0, time.UTC),
			PersonID:  personIDs[0],
		}
		if err := shifts.CreateShift(ctx, bad); !errors.Is(err, apperrors.ErrEndBeforeStart) {
			log.Warn().Err(err).Msg("inverted shift was not rejected as expected")
		}
	}

	return ids
}

func seedOvertimes(ctx context.Context, log zerolog.Logger, overtimes service.OvertimeService, shiftIDs []uint) {
	for i, shiftID := range shiftIDs {
		if i%4 != 0 {
			continue
		}
		overtime := &model.Overtime{
			ShiftID: shiftID,
			Type:    "Kompledigt",
			Hours:   1 + rand.Intn(4),
		}
		if err := overtimes.CreateOvertime(ctx, overtime); err != nil {
			log.Error().Err(err).Msg("seed overtime")
		}
	}
}

// placeholderValue fills one of the opaque field_A..field_E columns.
func placeholderValue() *string {
	v := uuid.NewString()[:8]
	return &v
}
