package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const randomForms = 12

var fixedForms = []domain.BedtimeForm{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), WakeTime: "07:00", SleepHours: 8, CoffeeCups: 1},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), WakeTime: "05:30", SleepHours: 7.5, CoffeeCups: 3},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), WakeTime: "09:15", SleepHours: 12, CoffeeCups: 20},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), WakeTime: "00:30", SleepHours: 4, CoffeeCups: 1},
}

// Run seeds the database with sample bedtime forms. Safe to call multiple times.
func Run(ctx context.Context, db *gorm.DB, bedtime service.BedtimeService) error {
	if err := db.AutoMigrate(&domain.BedtimeForm{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(42))
	for _, form := range sampleForms(rng) {
		compute(ctx, bedtime, &form)
		if err := db.WithContext(ctx).Where("id = ?", form.ID).FirstOrCreate(&form).Error; err != nil {
			return fmt.Errorf("failed to create form %s: %w", form.ID, err)
		}
	}

	log.Println("Seed completed")
	return nil
}

// sampleForms returns the fixed forms followed by random ones whose IDs are derived from rng.
func sampleForms(rng *rand.Rand) []domain.BedtimeForm {
	forms := append([]domain.BedtimeForm(nil), fixedForms...)
	for i := 0; i < randomForms; i++ {
		forms = append(forms, domain.BedtimeForm{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("seed-form-%d", i))),
			WakeTime:   domain.Clock{Hour: 4 + rng.Intn(7), Minute: 15 * rng.Intn(4)}.String(),
			SleepHours: domain.MinSleepHours + domain.SleepHoursStep*float64(rng.Intn(33)),
			CoffeeCups: domain.MinCoffeeCups + rng.Intn(domain.MaxCoffeeCups),
		})
	}
	return forms
}

func compute(ctx context.Context, bedtime service.BedtimeService, form *domain.BedtimeForm) {
	b, err := bedtime.Compute(ctx, form.Wake(), form.SleepHours, form.CoffeeCups)
	if err != nil {
		log.Printf("[seed] form %s: %v", form.ID, err)
		form.PredictedBedtime = domain.EstimationFailedMessage
		form.Estimated = false
		return
	}
	form.PredictedBedtime = b.Formatted
	form.Estimated = true
}
