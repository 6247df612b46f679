package service

import (
	"context"
	"fmt"
	"strings"

	"chessclub/backend/internal/models"
	"chessclub/backend/internal/pgn"
	"chessclub/backend/internal/repository"

	"gorm.io/gorm"
)

// GameDetail is a game as seen by one viewer.
type GameDetail struct {
	Game      *models.Game
	Likes     int64
	LikedByMe bool
	Tags      []repository.AppliedTag
}

// Games posts, shows and deletes games.
type Games struct {
	db       *gorm.DB
	users    *repository.UserRepository
	games    *repository.GameRepository
	likes    *repository.LikeRepository
	gameTags *repository.GameTagRepository
}

func NewGames(db *gorm.DB) *Games {
	return &Games{
		db:       db,
		users:    repository.NewUserRepository(db),
		games:    repository.NewGameRepository(db),
		likes:    repository.NewLikeRepository(db),
		gameTags: repository.NewGameTagRepository(db),
	}
}

// Create validates the PGN and stores the game with the headers it carries.
func (s *Games) Create(ctx context.Context, userID uint, title, text string) (*models.Game, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	summary, err := pgn.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = summary.DefaultTitle(models.UnknownPlayer)
	}

	game := &models.Game{
		UserID: userID,
		Title:  title,
		PGN:    strings.TrimSpace(text),
		Event:  summary.Event,
		Site:   summary.Site,
		White:  orUnknown(summary.White),
		Black:  orUnknown(summary.Black),
		Result: summary.Result,
	}
	if err := s.games.Save(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Get loads a game with its like count and applied tags for viewerID.
func (s *Games) Get(ctx context.Context, gameID, viewerID uint) (*GameDetail, error) {
	game, err := s.games.ByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	likes, err := s.likes.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	like, err := s.likes.Find(ctx, gameID, viewerID)
	if err != nil {
		return nil, err
	}
	tags, err := s.gameTags.ByGame(ctx, gameID, viewerID)
	if err != nil {
		return nil, err
	}

	return &GameDetail{Game: game, Likes: likes, LikedByMe: like != nil, Tags: tags}, nil
}

// Delete removes a game posted by userID along with its likes and tags.
func (s *Games) Delete(ctx context.Context, gameID, userID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}

	return repository.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		game, err := s.games.ByID(ctx, gameID)
		if err != nil {
			return err
		}
		if game == nil {
			return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}
		if game.UserID != userID {
			return fmt.Errorf("game %d: %w", gameID, ErrForbidden)
		}

		n, err := s.games.DeleteCascade(ctx, gameID)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}
		return nil
	})
}

func orUnknown(name string) string {
	if name == "" {
		return models.UnknownPlayer
	}
	return name
}
