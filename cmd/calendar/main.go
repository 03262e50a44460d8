package main

import (
	"log"
	"os"

	"eventrental/internal/clock"
	"eventrental/internal/registry"
	"eventrental/internal/scheduling"
	"eventrental/internal/shared/config"
	"eventrental/internal/store"
	"eventrental/internal/venues"
	"eventrental/pkg/logger"

	"github.com/joho/godotenv"
)

// Prints one line per booked event in the record file, STORE_PATH by
// default or the first argument when given.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	path := cfg.Store.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	catalog := venues.DefaultCatalog()
	reg := registry.New(catalog, scheduling.NewScheduler(catalog, clock.NewSystem()), store.NewFileStore(),
		registry.WithOutput(os.Stderr),
		registry.WithLogger(logger.NewWithWriter(os.Stderr, "warn")),
	)

	reg.Reload(path)
	if err := reg.WriteCalendar(os.Stdout); err != nil {
		log.Fatalf("Failed to print calendar: %v", err)
	}
}
