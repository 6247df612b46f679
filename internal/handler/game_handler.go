package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"chessclub/backend/internal/auth"
	"chessclub/backend/internal/database"
	"chessclub/backend/internal/hub"
	"chessclub/backend/internal/repository"
	"chessclub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput is a new game submission. The pgn field must hold a legal game.
type GameInput struct {
	Title string `json:"title" form:"title" binding:"max=255" example:"The Immortal Game"`
	PGN   string `json:"pgn" form:"pgn" binding:"required,pgn"`
}

// GameSummaryResponse is one row of a game listing.
type GameSummaryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	White     string    `json:"white"`
	Black     string    `json:"black"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int64     `json:"likes"`
	Tags      int64     `json:"tags"`
}

func newGameSummaryResponse(g repository.GameSummary) GameSummaryResponse {
	return GameSummaryResponse{
		ID:        g.ID,
		Title:     g.Title,
		UserID:    g.UserID,
		Username:  g.Username,
		White:     g.White,
		Black:     g.Black,
		Result:    g.Result,
		CreatedAt: g.CreatedAt,
		Likes:     g.LikeCount,
		Tags:      g.TagCount,
	}
}

// GameListResponse is a page of games together with the sort that produced it.
type GameListResponse struct {
	Sort string `json:"sort" example:"newest"`
	PaginatedResponse[GameSummaryResponse]
}

// AppliedTagResponse is a tag on a game with its upvote tally.
type AppliedTagResponse struct {
	GameTagID uint   `json:"game_tag_id"`
	TagID     uint   `json:"tag_id"`
	Name      string `json:"name"`
	Votes     int64  `json:"votes"`
	VotedByMe bool   `json:"voted_by_me"`
}

// GameOwnerResponse identifies who posted a game.
type GameOwnerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
}

// GameDetailResponse is the full view of a single game.
type GameDetailResponse struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	PGN       string               `json:"pgn"`
	Event     string               `json:"event"`
	Site      string               `json:"site"`
	White     string               `json:"white"`
	Black     string               `json:"black"`
	Result    string               `json:"result"`
	CreatedAt time.Time            `json:"created_at"`
	Owner     GameOwnerResponse    `json:"owner"`
	Likes     int64                `json:"likes"`
	LikedByMe bool                 `json:"liked_by_me"`
	Tags      []AppliedTagResponse `json:"tags"`
}

func newGameDetailResponse(d *service.GameDetail) GameDetailResponse {
	tags := make([]AppliedTagResponse, 0, len(d.Tags))
	for _, t := range d.Tags {
		tags = append(tags, AppliedTagResponse{
			GameTagID: t.GameTagID,
			TagID:     t.TagID,
			Name:      t.Name,
			Votes:     t.Votes,
			VotedByMe: t.MyVotes > 0,
		})
	}

	g := d.Game
	return GameDetailResponse{
		ID:        g.ID,
		Title:     g.Title,
		PGN:       g.PGN,
		Event:     g.Event,
		Site:      g.Site,
		White:     g.White,
		Black:     g.Black,
		Result:    g.Result,
		CreatedAt: g.CreatedAt,
		Owner: GameOwnerResponse{
			ID:       g.User.ID,
			Username: g.User.Username,
			ImageURL: g.User.ImageURL,
		},
		Likes:     d.Likes,
		LikedByMe: d.LikedByMe,
		Tags:      tags,
	}
}

// endregion

// region --- Listing Handlers ---

// GetGames godoc
// @Summary      List games
// @Description  Lists games in one of ten orders, optionally filtered by title.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        sort  query     string  false  "newest, oldest, title_az, title_za, user_az, user_za, most_likes, least_likes, most_tags, least_tags" default(newest)
// @Param        q     query     string  false  "Search query for game title"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  GameListResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	listGames(c, service.ListQuery{Search: c.Query("q")})
}

// GetUserGames godoc
// @Summary      List a user's games
// @Description  Lists the games posted by one user.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        userId path     int     true   "User ID"
// @Param        sort   query    string  false  "Sort key" default(newest)
// @Param        page   query    int     false  "Page number" default(1)
// @Param        limit  query    int     false  "Items per page" default(10)
// @Success      200    {object} GameListResponse
// @Failure      400    {object} ErrorResponse
// @Failure      404    {object} ErrorResponse "User not found"
// @Router       /games/user/{userId} [get]
func GetUserGames(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	exists, err := repository.NewUserRepository(database.DB).Exists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	listGames(c, service.ListQuery{UserID: userID})
}

// SearchGamesByTag godoc
// @Summary      List games carrying a tag
// @Description  Lists the games to which a tag has been applied.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        tag_id query    int     true   "Tag ID"
// @Param        sort   query    string  false  "Sort key" default(newest)
// @Param        page   query    int     false  "Page number" default(1)
// @Param        limit  query    int     false  "Items per page" default(10)
// @Success      200    {object} GameListResponse
// @Failure      400    {object} ErrorResponse
// @Failure      404    {object} ErrorResponse "Tag not found"
// @Router       /games/search_by_tag [get]
func SearchGamesByTag(c *gin.Context) {
	tagID, err := strconv.ParseUint(c.Query("tag_id"), 10, 32)
	if err != nil || tagID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag_id"})
		return
	}

	exists, err := repository.NewTagRepository(database.DB).Exists(c.Request.Context(), uint(tagID))
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	listGames(c, service.ListQuery{TagID: uint(tagID)})
}

func listGames(c *gin.Context, q service.ListQuery) {
	q.Sort, _ = service.ParseSortKey(c.Query("sort"))
	q.Page, q.Limit = pageParams(c)

	games, total, err := service.NewListing(database.DB).ListGames(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]GameSummaryResponse, 0, len(games))
	for _, g := range games {
		data = append(data, newGameSummaryResponse(g))
	}

	c.JSON(http.StatusOK, GameListResponse{
		Sort:              string(q.Sort),
		PaginatedResponse: NewPaginatedResponse(data, total, q.Page, q.Limit),
	})
}

// endregion

// region --- Game Handlers ---

// CreateGame godoc
// @Summary      Post a game
// @Description  Stores a game from PGN text. Player names and result are read from the PGN headers.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game"
// @Success      201  {object}  GameDetailResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games/new [post]
func CreateGame(c *gin.Context) {
	userID, _ := auth.CurrentUser(c)

	var input GameInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	games := service.NewGames(database.DB)
	game, err := games.Create(c.Request.Context(), userID, input.Title, input.PGN)
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := games.Get(c.Request.Context(), game.ID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newGameDetailResponse(detail))
}

// GetGameByID godoc
// @Summary      Get a single game
// @Description  Retrieves a game with its likes and applied tags as seen by the caller.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200 {object} GameDetailResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/game/{gameId} [get]
func GetGameByID(c *gin.Context) {
	viewerID, _ := auth.CurrentUser(c)
	gameID, ok := idParam(c, "gameId")
	if !ok {
		return
	}

	detail, err := service.NewGames(database.DB).Get(c.Request.Context(), gameID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameDetailResponse(detail))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes one of the caller's games together with its likes, tags and votes.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Not the owner"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/game/{gameId}/delete [post]
func DeleteGame(c *gin.Context) {
	userID, _ := auth.CurrentUser(c)
	gameID, ok := idParam(c, "gameId")
	if !ok {
		return
	}

	if err := service.NewGames(database.DB).Delete(c.Request.Context(), gameID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// StreamGameEvents godoc
// @Summary      Follow a game
// @Description  Streams like and tag-vote events for a game as server-sent events.
// @Tags         games
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200 {string} string "event stream"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/game/{gameId}/events [get]
func StreamGameEvents(c *gin.Context) {
	gameID, ok := idParam(c, "gameId")
	if !ok {
		return
	}

	exists, err := repository.NewGameRepository(database.DB).Exists(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	client := hub.NewClient()
	hub.GlobalHub.Subscribe(gameID, client)
	defer hub.GlobalHub.Unsubscribe(gameID, client)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	keepAlive := time.NewTicker(30 * time.Second)
	defer keepAlive.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, open := <-client:
			if !open {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}

// endregion
