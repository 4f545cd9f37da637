// Package main provides a tool to seed the database with demo catalog data.
//
// This creates a small tag vocabulary, priced gift items linked to those
// tags, and a few recipient profiles for trying out the recommend flow.
//
// Usage:
//
//	DB_PATH=~/Giftwise/giftwise.db go run ./cmd/seed
//	DB_PATH=~/Giftwise/giftwise.db go run ./cmd/seed --with-profiles
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/store/sqlite"
)

var withProfiles = flag.Bool("with-profiles", false, "Also create demo recipient profiles")

type seedItem struct {
	name  string
	price float64
	img   string
	tags  []string
}

var seedTags = []string{
	"Sports", "Coffee", "Books", "Electronics", "Gardening",
	"Cooking", "Music", "Travel", "Art", "Games",
}

var seedItems = []seedItem{
	{"Ceramic Pour-Over Set", 38.00, "https://img.giftwise.dev/pour-over.jpg", []string{"Coffee"}},
	{"Burr Coffee Grinder", 64.50, "https://img.giftwise.dev/grinder.jpg", []string{"Coffee", "Electronics"}},
	{"Insulated Travel Mug", 24.00, "https://img.giftwise.dev/travel-mug.jpg", []string{"Coffee", "Travel"}},
	{"Leather Book Sleeve", 29.00, "https://img.giftwise.dev/book-sleeve.jpg", []string{"Books", "Travel"}},
	{"Reading Lamp", 42.00, "https://img.giftwise.dev/reading-lamp.jpg", []string{"Books", "Electronics"}},
	{"Hardcover Notebook Trio", 18.00, "https://img.giftwise.dev/notebooks.jpg", []string{"Books", "Art"}},
	{"Bluetooth Speaker", 79.99, "https://img.giftwise.dev/speaker.jpg", []string{"Electronics", "Music"}},
	{"Wireless Earbuds", 89.00, "https://img.giftwise.dev/earbuds.jpg", []string{"Electronics", "Music", "Sports"}},
	{"Yoga Mat", 35.00, "https://img.giftwise.dev/yoga-mat.jpg", []string{"Sports"}},
	{"Running Belt", 16.50, "https://img.giftwise.dev/running-belt.jpg", []string{"Sports", "Travel"}},
	{"Herb Garden Starter Kit", 27.00, "https://img.giftwise.dev/herb-kit.jpg", []string{"Gardening", "Cooking"}},
	{"Copper Watering Can", 33.00, "https://img.giftwise.dev/watering-can.jpg", []string{"Gardening"}},
	{"Cast Iron Skillet", 45.00, "https://img.giftwise.dev/skillet.jpg", []string{"Cooking"}},
	{"Spice Sampler Box", 22.00, "https://img.giftwise.dev/spices.jpg", []string{"Cooking", "Travel"}},
	{"Watercolor Starter Set", 31.00, "https://img.giftwise.dev/watercolor.jpg", []string{"Art"}},
	{"Sketching Pencil Tin", 14.00, "https://img.giftwise.dev/pencils.jpg", []string{"Art", "Books"}},
	{"Strategy Board Game", 49.00, "https://img.giftwise.dev/board-game.jpg", []string{"Games"}},
	{"Travel Chess Set", 26.00, "https://img.giftwise.dev/chess.jpg", []string{"Games", "Travel"}},
	{"Vinyl Record Stand", 39.00, "https://img.giftwise.dev/record-stand.jpg", []string{"Music"}},
	{"Ukulele", 58.00, "https://img.giftwise.dev/ukulele.jpg", []string{"Music", "Travel"}},
}

type seedProfile struct {
	name        string
	age         int
	description string
}

var seedProfiles = []seedProfile{
	{"Ada", 34, "Starts every morning with pour-over coffee and ends every evening with a novel. Recently talked about learning to paint."},
	{"Marcus", 28, "Trains for half marathons and is slowly filling his apartment with houseplants."},
	{"Priya", 41, "Hosts elaborate dinner parties and collects vinyl records from the seventies."},
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Giftwise/giftwise.db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := sqlite.Open(dbPath, slog.New(slog.DiscardHandler))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	// Create the tag vocabulary, reusing tags that already exist.
	tagIDs := make(map[string]int64, len(seedTags))
	for _, name := range seedTags {
		tag, err := s.CreateTag(ctx, name)
		if err != nil {
			existing, lookupErr := s.GetTagsByNames(ctx, []string{name})
			if lookupErr != nil || len(existing) == 0 {
				log.Fatalf("Failed to create tag %q: %v", name, err)
			}
			tag = existing[0]
		}
		tagIDs[name] = tag.ID
	}
	fmt.Printf("Tags ready: %d\n", len(tagIDs))

	created := 0
	for _, it := range seedItems {
		price := it.price
		item := &domain.GiftItem{
			Name:     it.name,
			Price:    &price,
			ImageURL: it.img,
		}
		ids := make([]int64, 0, len(it.tags))
		for _, tag := range it.tags {
			ids = append(ids, tagIDs[tag])
		}
		if err := s.CreateItem(ctx, item, ids); err != nil {
			log.Fatalf("Failed to create item %q: %v", it.name, err)
		}
		created++
	}
	fmt.Printf("Items created: %d\n", created)

	if *withProfiles {
		for _, p := range seedProfiles {
			age := p.age
			profile := &domain.Profile{
				Name:            p.name,
				Age:             &age,
				LongDescription: p.description,
			}
			if err := s.CreateProfile(ctx, profile); err != nil {
				log.Fatalf("Failed to create profile %q: %v", p.name, err)
			}
		}
		fmt.Printf("Profiles created: %d\n", len(seedProfiles))
	}

	fmt.Println("Done.")
}
