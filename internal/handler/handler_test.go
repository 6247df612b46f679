package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chessclub/backend/internal/service"
	"chessclub/backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{service.ErrUnauthorized, http.StatusUnauthorized, "Access unauthorized."},
		{fmt.Errorf("game 3: %w", service.ErrNotFound), http.StatusNotFound, "game 3: not found"},
		{fmt.Errorf("game 3: %w", service.ErrForbidden), http.StatusForbidden, "game 3: forbidden"},
		{fmt.Errorf("%w: no moves", service.ErrInvalidInput), http.StatusBadRequest, "invalid input: no moves"},
		{service.ErrConflict, http.StatusInternalServerError, "Internal server error"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tc.err)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, tc.body), w.Body.String())
		})
	}
}

func TestIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/games/:gameId", func(c *gin.Context) {
		if id, ok := idParam(c, "gameId"); ok {
			c.JSON(http.StatusOK, gin.H{"id": id})
		}
	})

	for path, code := range map[string]int{
		"/games/7":    http.StatusOK,
		"/games/0":    http.StatusBadRequest,
		"/games/-1":   http.StatusBadRequest,
		"/games/nope": http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, w.Code, path)
	}
}

func TestPagination(t *testing.T) {
	resp := NewPaginatedResponse([]int(nil), 21, 3, 10)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, 3, resp.Meta.CurrentPage)

	for query, want := range map[string][2]int{
		"":                   {1, defaultPageSize},
		"?page=2&limit=5":    {2, 5},
		"?page=0&limit=-3":   {1, defaultPageSize},
		"?page=x&limit=1000": {1, maxPageSize},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/"+query, nil)
		page, limit := pageParams(c)
		assert.Equal(t, want, [2]int{page, limit}, query)
	}
}

func TestPGNValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type input struct {
		PGN string `binding:"required,pgn"`
	}
	assert.True(t, validate(t, input{PGN: testutil.SamplePGN}))
	assert.True(t, validate(t, input{PGN: "1. e4 e5 2. Nf3 Nc6"}))
	assert.False(t, validate(t, input{PGN: "not a game"}))
	assert.False(t, validate(t, input{PGN: "1. e4 e5 2. Ke3"}))
}

func validate(t *testing.T, obj interface{}) bool {
	t.Helper()
	return binding.Validator.ValidateStruct(obj) == nil
}
