package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"chessclub/backend/internal/auth"
	"chessclub/backend/internal/database"
	"chessclub/backend/internal/hub"
	"chessclub/backend/internal/models"
	"chessclub/backend/internal/repository"
	"chessclub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TagInput struct {
	Name string `json:"name" form:"name" binding:"required,max=100"`
}

// TagVoteInput names the tag to apply or vote on. The field is called tags to
// match the game page form.
type TagVoteInput struct {
	Tags uint `json:"tags" form:"tags" binding:"required,gt=0"`
}

type TagResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
		Name:      tag.Name,
	}
}

// region --- Admin Handlers ---

// CreateTag godoc
// @Summary      Create a new tag
// @Description  Creates a new tag for games.
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body TagInput true "Tag Info"
// @Success      201  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Tag already exists"
// @Router       /admin/tags [post]
func CreateTag(c *gin.Context) {
	var input TagInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := models.Tag{Name: strings.TrimSpace(input.Name)}
	if tag.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name is required"})
		return
	}

	outcome, err := repository.NewTagRepository(database.DB).Save(c.Request.Context(), &tag)
	if err != nil {
		respondError(c, err)
		return
	}
	if outcome == repository.AlreadyExists {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag already exists"})
		return
	}

	c.JSON(http.StatusCreated, newTagResponse(tag))
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves a list of all available tags, ordered by name.
// @Tags         tags
// @Produce      json
// @Success      200  {array}   TagResponse
// @Router       /tags [get]
func GetTags(c *gin.Context) {
	tags, err := repository.NewTagRepository(database.DB).All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateTag godoc
// @Summary      Update a tag
// @Description  Updates the name of an existing tag.
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int      true  "Tag ID"
// @Param        input body TagInput true "New Tag Info"
// @Success      200  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Failure      409  {object}  ErrorResponse "Tag already exists"
// @Router       /admin/tags/{id} [put]
func UpdateTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input TagInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags := repository.NewTagRepository(database.DB)
	tag, err := tags.ByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if tag == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	outcome, err := tags.Rename(c.Request.Context(), tag, strings.TrimSpace(input.Name))
	if err != nil {
		respondError(c, err)
		return
	}
	if outcome == repository.AlreadyExists {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag already exists"})
		return
	}
	c.JSON(http.StatusOK, newTagResponse(*tag))
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Description  Deletes a tag and removes it from every game.
// @Tags         admin-tags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tag ID"
// @Success      200  {object}  map[string]string "{"message": "Tag deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /admin/tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var deleted int64
	tags := repository.NewTagRepository(database.DB)
	err := repository.WithTransaction(c.Request.Context(), database.DB, func(ctx context.Context) error {
		var err error
		deleted, err = tags.Delete(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

// endregion

// region --- Voting Handlers ---

// VoteTag godoc
// @Summary      Tag a game or toggle an upvote
// @Description  Applies the tag to the game with the caller's upvote, or toggles the caller's upvote when the tag is already applied.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int          true "Game ID"
// @Param        input  body TagVoteInput true "Tag to vote on"
// @Success      200 {object} service.TagVoteResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game or tag not found"
// @Router       /games/game/{gameId}/tag [post]
func VoteTag(c *gin.Context) {
	gameID, ok := idParam(c, "gameId")
	if !ok {
		return
	}

	var input TagVoteInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runTagVote(c, gameID, input.Tags)
}

// VoteTagByPath godoc
// @Summary      Tag a game or toggle an upvote
// @Description  Same as POST /games/game/{gameId}/tag with the tag id in the path.
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Param        tagId  path int true "Tag ID"
// @Success      200 {object} service.TagVoteResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game or tag not found"
// @Router       /games/game/{gameId}/tag/{tagId} [post]
func VoteTagByPath(c *gin.Context) {
	gameID, ok := idParam(c, "gameId")
	if !ok {
		return
	}
	tagID, ok := idParam(c, "tagId")
	if !ok {
		return
	}

	runTagVote(c, gameID, tagID)
}

func runTagVote(c *gin.Context, gameID, tagID uint) {
	userID, _ := auth.CurrentUser(c)

	result, err := service.NewTagVoteEngine(database.DB).ApplyOrToggle(c.Request.Context(), gameID, tagID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(gameID, hub.Event{Type: hub.EventTagVote, Payload: result})
	c.JSON(http.StatusOK, result)
}

// endregion
