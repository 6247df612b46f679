package handler

import (
	"log"
	"net/http"

	"chessclub/backend/internal/auth"
	"chessclub/backend/internal/database"
	"chessclub/backend/internal/models"
	"chessclub/backend/internal/repository"
	"chessclub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username  string `json:"username" form:"username" binding:"required,max=255" example:"magnus"`
	Email     string `json:"email" form:"email" binding:"required,email" example:"magnus@example.com"`
	Password  string `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=255"`
	LastName  string `json:"last_name" form:"last_name" binding:"max=255"`
	ImageURL  string `json:"image_url" form:"image_url" binding:"omitempty,url"`
	Location  string `json:"location" form:"location" binding:"max=255"`
	Bio       string `json:"bio" form:"bio"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" form:"login" binding:"required" example:"magnus"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID             uint   `json:"id" example:"1"`
	Username       string `json:"username" example:"magnus"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GamesCount     int64  `json:"games_count"`
	LikesCount     int64  `json:"likes_count"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	PublicUserResponse
	Email string `json:"email" example:"magnus@example.com"`
	Role  string `json:"role" example:"user"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   string(hashedPassword),
		Role:           models.RoleUser,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
		Location:       input.Location,
		Bio:            input.Bio,
	}

	users := repository.NewUserRepository(database.DB)
	outcome, err := users.Save(c.Request.Context(), &user)
	if err != nil {
		respondError(c, err)
		return
	}
	if outcome == repository.AlreadyExists {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := repository.NewUserRepository(database.DB).ByLogin(c.Request.Context(), input.Login)
	if err != nil {
		respondError(c, err)
		return
	}
	// Unknown users and wrong passwords look the same to the caller.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Revokes the presented token until it expires.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string "{"message": "Logged out"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/logout [post]
func LogoutUser(c *gin.Context) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
		return
	}

	if auth.Revocations != nil && claims.TokenID != "" {
		if err := auth.Revocations.Revoke(c.Request.Context(), claims.TokenID, claims.ExpiresAt); err != nil {
			log.Printf("auth: failed to revoke token of user %d: %v", claims.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// endregion

// region --- User Handlers ---

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches for users by username with pagination.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for username"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[PublicUserResponse]
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users [get]
func SearchUsers(c *gin.Context) {
	page, limit := pageParams(c)
	ctx := c.Request.Context()

	users, total, err := repository.NewUserRepository(database.DB).Search(ctx, c.Query("q"), limit, (page-1)*limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PublicUserResponse, 0, len(users))
	for _, user := range users {
		response, err := buildPublicUserResponse(c, user)
		if err != nil {
			respondError(c, err)
			return
		}
		responses = append(responses, response)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, total, page, limit))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user, with game and like counts.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *gin.Context) {
	targetUserID, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := repository.NewUserRepository(database.DB).ByID(c.Request.Context(), targetUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	response, err := buildPublicUserResponse(c, *user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID, _ := auth.CurrentUser(c)

	user, err := repository.NewUserRepository(database.DB).ByID(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	public, err := buildPublicUserResponse(c, *user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PrivateUserResponse{
		PublicUserResponse: public,
		Email:              user.Email,
		Role:               user.Role,
	})
}

// endregion

// region --- Helpers ---

func buildPublicUserResponse(c *gin.Context, user models.User) (PublicUserResponse, error) {
	ctx := c.Request.Context()

	gamesCount, err := repository.NewGameRepository(database.DB).CountByUser(ctx, user.ID)
	if err != nil {
		return PublicUserResponse{}, err
	}
	likesCount, err := repository.NewLikeRepository(database.DB).CountByUser(ctx, user.ID)
	if err != nil {
		return PublicUserResponse{}, err
	}

	return PublicUserResponse{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ImageURL:       user.ImageURL,
		HeaderImageURL: user.HeaderImageURL,
		Location:       user.Location,
		Bio:            user.Bio,
		GamesCount:     gamesCount,
		LikesCount:     likesCount,
	}, nil
}

// endregion
