// Command seed loads a sample member, games, tags, votes and likes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"chessclub/backend/internal/config"
	"chessclub/backend/internal/database"
	"chessclub/backend/internal/logging"
	"chessclub/backend/internal/models"
	"chessclub/backend/internal/repository"
	"chessclub/backend/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var sampleTags = []string{"sacrifice", "miniature", "checkmate", "positional", "tactical", "fork", "brilliancy"}

// Tags applied to each sample game, by index into sampleGames and sampleTags.
var sampleGameTags = map[int][]int{
	0: {0, 1, 4, 6},
	1: {1, 2, 4, 5},
	2: {0, 1},
	3: {4},
}

var sampleLikes = []int{0, 1, 2, 3}

func main() {
	reset := flag.Bool("reset", false, "drop every table before seeding")
	admin := flag.Bool("admin", false, "give the sample member the admin role")
	flag.Parse()

	config.LoadConfig()
	cfg := config.AppConfig
	out := logging.Setup(cfg.LogFile)

	database.Connect(cfg, out)
	db := database.DB

	if *reset {
		if err := dropAll(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		log.Println("Database reset.")
	}

	if err := seed(context.Background(), db, *admin); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed data loaded.")
}

func dropAll(db *gorm.DB) error {
	all := models.All()
	// Children first so foreign keys never block a drop.
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return err
		}
	}
	return database.Migrate(db)
}

func seed(ctx context.Context, db *gorm.DB, admin bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("ivanchuk"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := models.RoleUser
	if admin {
		role = models.RoleAdmin
	}
	user := &models.User{
		Username:       "ivanchuk",
		Email:          "ivan@ivan.ivan",
		PasswordHash:   string(hash),
		Role:           role,
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/3/37/Vasyll_Ivanchuk1_Ukr_Ch_2014_%28cropped%29.jpg",
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	outcome, err := repository.NewUserRepository(db).Save(ctx, user)
	if err != nil {
		return err
	}
	if outcome == repository.AlreadyExists {
		log.Println("Sample member already exists; run with -reset to reload.")
		return nil
	}

	games := service.NewGames(db)
	gameIDs := make([]uint, len(sampleGames))
	for i, g := range sampleGames {
		game, err := games.Create(ctx, user.ID, g.title, g.pgn)
		if err != nil {
			return err
		}
		gameIDs[i] = game.ID
	}

	tags := repository.NewTagRepository(db)
	tagIDs := make([]uint, len(sampleTags))
	for i, name := range sampleTags {
		tag := &models.Tag{Name: name}
		outcome, err := tags.Save(ctx, tag)
		if err != nil {
			return err
		}
		if outcome == repository.AlreadyExists {
			return fmt.Errorf("tag %q already exists; run with -reset", name)
		}
		tagIDs[i] = tag.ID
	}

	votes := service.NewTagVoteEngine(db)
	for game, applied := range sampleGameTags {
		for _, tag := range applied {
			if _, err := votes.ApplyOrToggle(ctx, gameIDs[game], tagIDs[tag], user.ID); err != nil {
				return err
			}
		}
	}

	likes := service.NewLikeEngine(db)
	for _, game := range sampleLikes {
		if _, err := likes.Add(ctx, gameIDs[game], user.ID); err != nil {
			return err
		}
	}
	return nil
}
