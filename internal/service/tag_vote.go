package service

import (
	"context"
	"fmt"

	"chessclub/backend/internal/models"
	"chessclub/backend/internal/repository"

	"gorm.io/gorm"
)

// TagVoteState is the branch a tag vote took.
type TagVoteState string

const (
	// TagCreatedAndUpvoted: the tag was applied to the game for the first time
	// and the caller's upvote was recorded.
	TagCreatedAndUpvoted TagVoteState = "created_and_upvoted"
	// TagUpvoted: the tag was already applied; the caller upvoted it.
	TagUpvoted TagVoteState = "upvoted"
	// TagUpvoteRemoved: the caller's existing upvote was withdrawn. The tag
	// stays applied to the game.
	TagUpvoteRemoved TagVoteState = "upvote_removed"
)

// TagVoteResult reports the branch taken and the tally after the call.
type TagVoteResult struct {
	GameID    uint         `json:"game_id"`
	TagID     uint         `json:"tag_id"`
	GameTagID uint         `json:"game_tag_id"`
	State     TagVoteState `json:"state"`
	Votes     int64        `json:"votes"`
}

// TagVoteEngine applies tags to games and toggles per-user upvotes on them.
type TagVoteEngine struct {
	db       *gorm.DB
	users    *repository.UserRepository
	games    *repository.GameRepository
	tags     *repository.TagRepository
	gameTags *repository.GameTagRepository
}

func NewTagVoteEngine(db *gorm.DB) *TagVoteEngine {
	return &TagVoteEngine{
		db:       db,
		users:    repository.NewUserRepository(db),
		games:    repository.NewGameRepository(db),
		tags:     repository.NewTagRepository(db),
		gameTags: repository.NewGameTagRepository(db),
	}
}

// ApplyOrToggle runs the vote state machine for (game, tag, user):
// no GameTag -> create it with the caller's upvote; GameTag without the
// caller's vote -> upvote; GameTag with the caller's vote -> remove the vote.
// When a concurrent caller wins a unique key, the decision is made again once
// against the row it produced.
func (e *TagVoteEngine) ApplyOrToggle(ctx context.Context, gameID, tagID, userID uint) (*TagVoteResult, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	var result *TagVoteResult
	err := runWithRetry(ctx, e.db, "tag_vote", func(ctx context.Context) error {
		if err := e.checkRefs(ctx, gameID, tagID, userID); err != nil {
			return err
		}

		gameTag, err := e.gameTags.Find(ctx, gameID, tagID)
		if err != nil {
			return err
		}

		var state TagVoteState
		if gameTag == nil {
			state, gameTag, err = e.apply(ctx, gameID, tagID, userID)
		} else {
			state, err = e.toggle(ctx, gameTag, userID)
		}
		if err != nil {
			return err
		}

		votes, err := e.gameTags.CountVotes(ctx, gameTag.ID)
		if err != nil {
			return err
		}
		result = &TagVoteResult{
			GameID:    gameID,
			TagID:     tagID,
			GameTagID: gameTag.ID,
			State:     state,
			Votes:     votes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tagVoteOutcomes.WithLabelValues(string(result.State)).Inc()
	return result, nil
}

func (e *TagVoteEngine) checkRefs(ctx context.Context, gameID, tagID, userID uint) error {
	if err := requireUser(ctx, e.users, userID); err != nil {
		return err
	}

	ok, err := e.games.Exists(ctx, gameID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	ok, err = e.tags.Exists(ctx, tagID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
	}
	return nil
}

// apply creates the GameTag and the creator's upvote.
func (e *TagVoteEngine) apply(ctx context.Context, gameID, tagID, userID uint) (TagVoteState, *models.GameTag, error) {
	gameTag, outcome, err := e.gameTags.Create(ctx, gameID, tagID)
	if err != nil {
		return "", nil, err
	}
	if outcome == repository.AlreadyExists {
		return "", nil, errRetry
	}

	outcome, err = e.gameTags.CreateVote(ctx, gameTag.ID, userID)
	if err != nil {
		return "", nil, err
	}
	if outcome == repository.AlreadyExists {
		return "", nil, errRetry
	}
	return TagCreatedAndUpvoted, gameTag, nil
}

// toggle flips the caller's upvote on an existing GameTag.
func (e *TagVoteEngine) toggle(ctx context.Context, gameTag *models.GameTag, userID uint) (TagVoteState, error) {
	vote, err := e.gameTags.FindVote(ctx, gameTag.ID, userID)
	if err != nil {
		return "", err
	}

	if vote == nil {
		outcome, err := e.gameTags.CreateVote(ctx, gameTag.ID, userID)
		if err != nil {
			return "", err
		}
		if outcome == repository.AlreadyExists {
			return "", errRetry
		}
		return TagUpvoted, nil
	}

	n, err := e.gameTags.DeleteVote(ctx, gameTag.ID, userID)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", errRetry
	}
	return TagUpvoteRemoved, nil
}
