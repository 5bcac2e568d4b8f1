package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"soundvibe/compatibility-api/internal/config"
	"soundvibe/compatibility-api/internal/models"
	"soundvibe/compatibility-api/internal/repositories"
)

func main() {
	log.Println("🚀 Starting profile seeding...")

	path := "./seed/profiles.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	profileRepo := repositories.NewProfileRepository(db)

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", path, err)
	}

	var profiles []models.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		log.Fatalf("❌ Failed to decode %s: %v", path, err)
	}
	log.Printf("📄 Loaded %d profiles from %s", len(profiles), path)

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for i := range profiles {
		p := &profiles[i]
		if p.ID == uuid.Nil {
			log.Printf("   ❌ Skipping %q: missing id", p.Username)
			failCount++
			continue
		}
		if err := profileRepo.Upsert(ctx, p); err != nil {
			log.Printf("   ❌ Failed to upsert %q: %v", p.Username, err)
			failCount++
			continue
		}
		log.Printf("   ✅ %s (%s)", p.Username, p.ID)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Seeding Summary:")
	log.Printf("   ✅ Successful: %d profiles", successCount)
	log.Printf("   ❌ Failed: %d profiles", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}

	log.Println("✅ All profiles seeded successfully!")
}
