// Command main populates the database with demo users, warbles, follows, and
// likes. It is intended for local development.
package main

import (
	"flag"
	"log"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/seed"
)

func main() {
	users := flag.Int("users", 25, "number of users to create")
	messages := flag.Int("messages", 8, "max messages per user")
	follows := flag.Int("follows", 6, "follow edges per user")
	likes := flag.Int("likes", 10, "likes per user")
	password := flag.String("password", "warble-me", "password shared by all seeded users")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.MessagesPerUser = *messages
	opts.FollowsPerUser = *follows
	opts.LikesPerUser = *likes
	opts.Password = *password

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
