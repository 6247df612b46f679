package handler

import (
	"context"
	"net/http"

	"chessclub/backend/internal/auth"
	"chessclub/backend/internal/database"
	"chessclub/backend/internal/hub"
	"chessclub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type likeFunc func(e *service.LikeEngine, ctx context.Context, gameID, userID uint) (*service.LikeResult, error)

// ToggleLike godoc
// @Summary      Like or unlike a game
// @Description  Adds the caller's like when absent and removes it when present.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200 {object} service.LikeResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/game/{gameId}/like [post]
func ToggleLike(c *gin.Context) {
	runLike(c, (*service.LikeEngine).Toggle)
}

// AddLike godoc
// @Summary      Like a game
// @Description  Likes a game. Liking an already liked game reports already_liked.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200 {object} service.LikeResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /users/add_like/{gameId} [post]
func AddLike(c *gin.Context) {
	runLike(c, (*service.LikeEngine).Add)
}

// DeleteLike godoc
// @Summary      Unlike a game
// @Description  Removes the caller's like. Unliking a game that is not liked reports not_liked.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200 {object} service.LikeResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /users/delete_like/{gameId} [post]
func DeleteLike(c *gin.Context) {
	runLike(c, (*service.LikeEngine).Remove)
}

func runLike(c *gin.Context, fn likeFunc) {
	userID, _ := auth.CurrentUser(c)
	gameID, ok := idParam(c, "gameId")
	if !ok {
		return
	}

	result, err := fn(service.NewLikeEngine(database.DB), c.Request.Context(), gameID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.State == service.LikeAdded || result.State == service.LikeRemoved {
		hub.GlobalHub.Broadcast(gameID, hub.Event{Type: hub.EventLike, Payload: result})
	}
	c.JSON(http.StatusOK, result)
}
