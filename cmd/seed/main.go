package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"eventrental/internal/clock"
	"eventrental/internal/events"
	"eventrental/internal/pricing"
	"eventrental/internal/registry"
	"eventrental/internal/scheduling"
	"eventrental/internal/shared/config"
	"eventrental/internal/store"
	"eventrental/internal/venues"
	"eventrental/pkg/logger"

	"github.com/joho/godotenv"
)

type demoEvent struct {
	category  events.Category
	tier      pricing.Tier
	guests    int
	beverages map[string]int
	foods     []string
}

var demoEvents = []demoEvent{
	{
		category:  events.CategoryWedding,
		tier:      pricing.TierPremier,
		guests:    400,
		beverages: map[string]int{"Espumante Imp.": 40, "Whisky": 10},
	},
	{
		category:  events.CategoryWedding,
		tier:      pricing.TierLuxo,
		guests:    200,
		beverages: map[string]int{"Suco Natural": 10, "Espumante Nac.": 5},
	},
	{
		category:  events.CategoryCorporateParty,
		tier:      pricing.TierStandard,
		guests:    100,
		beverages: map[string]int{"Água com gás": 20, "Refrigerante": 15},
	},
	{
		category: events.CategoryBirthdayParty,
		guests:   70,
		foods:    []string{"Coxinha", "Kibe", "Brigadeiro", "Pão de queijo"},
	},
	{
		category:  events.CategoryGraduation,
		tier:      pricing.TierLuxo,
		guests:    250,
		beverages: map[string]int{"Cerveja": 60},
	},
	{
		category: events.CategoryFreeParty,
		guests:   50,
	},
}

type Seeder struct {
	registry  *registry.Registry
	scheduler *scheduling.Scheduler
	path      string
}

func main() {
	fmt.Println("🌱 Starting event rental seeder...")

	_ = godotenv.Load()
	cfg := config.Load()
	logger.SetDefault(logger.NewWithWriter(os.Stdout, cfg.LogLevel))

	catalog := venues.DefaultCatalog()
	scheduler := scheduling.NewScheduler(catalog, clock.NewSystem())
	seeder := &Seeder{
		registry:  registry.New(catalog, scheduler, store.NewFileStore()),
		scheduler: scheduler,
		path:      cfg.Store.Path,
	}

	existing := seeder.registry.Reload(seeder.path)
	fmt.Printf("📂 %d events already in %s\n", len(existing), seeder.path)

	if err := seeder.SeedAll(context.Background()); err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}

	fmt.Println("\n📅 Calendar:")
	if err := seeder.registry.WriteCalendar(os.Stdout); err != nil {
		log.Fatalf("Failed to print calendar: %v", err)
	}
	fmt.Println("\n🎉 Seeding completed!")
}

// SeedAll books every demo event on its best venue and next free date.
func (s *Seeder) SeedAll(ctx context.Context) error {
	for _, demo := range demoEvents {
		q, err := s.build(demo)
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", demo.category, err)
		}

		if err := s.registry.AddEventAndPersist(ctx, q, s.path); err != nil {
			if errors.Is(err, venues.ErrDateAlreadyBooked) {
				fmt.Printf("⏭️  Skipping %s: %v\n", demo.category, err)
				continue
			}
			return fmt.Errorf("failed to persist %s: %w", demo.category, err)
		}

		e := q.Base()
		fmt.Printf("✅ %s for %d guests at %s on %s: R$ %.2f\n",
			e.Category(), e.GuestCount(), e.Venue().Code(), e.Date().Format("02/01/2006"), e.TotalPrice())
	}
	return nil
}

func (s *Seeder) build(demo demoEvent) (events.Quote, error) {
	tier := demo.tier
	if fixed, ok := demo.category.FixedTier(); ok {
		tier = fixed
	}

	proposal, ok := s.scheduler.Propose(demo.guests)
	if !ok {
		return nil, fmt.Errorf("no venue fits %d guests", demo.guests)
	}

	q, err := events.New(demo.category, proposal.Date, demo.guests, proposal.Venue, tier)
	if err != nil {
		return nil, err
	}

	e := q.Base()
	e.OfferBeverages(events.DefaultBeverageMenu())
	for name, quantity := range demo.beverages {
		if err := e.SetBeverageQuantity(name, quantity); err != nil {
			return nil, err
		}
	}

	if len(demo.foods) > 0 {
		items, err := events.FindFood(events.DefaultFoodMenu(), demo.foods...)
		if err != nil {
			return nil, err
		}
		if err := e.ChooseFood(items); err != nil {
			return nil, err
		}
	}

	q.ComputeTotal()
	return q, nil
}
