// Command seed populates the database with demo users, friendships and a
// back-dated history of reals.
package main

import (
	"flag"
	"log"

	"furreal/internal/calendar"
	"furreal/internal/config"
	"furreal/internal/database"
	"furreal/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	days := flag.Int("days", calendar.MemoryWindowDays, "Days of reals to back-fill")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(seed.Options{NumUsers: *numUsers, Days: *days}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
