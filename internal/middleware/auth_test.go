package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mkhadiri/mentorhub/config"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uint]*model.User
}

func (f *fakeUserRepo) Create(*model.User) error { return nil }

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(string) (*model.User, error) { return nil, gorm.ErrRecordNotFound }
func (f *fakeUserRepo) FindAll() ([]model.User, error)          { return nil, nil }
func (f *fakeUserRepo) Update(*model.User) error                { return nil }
func (f *fakeUserRepo) Delete(uint) error                       { return nil }
func (f *fakeUserRepo) CountByRole() (map[model.Role]int64, error) {
	return nil, nil
}

const testSecret = "test-secret"

func signToken(t *testing.T, userID uint, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(userID),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWT{Secret: testSecret}}

	r := gin.New()
	r.GET("/whoami", Auth(cfg, repo), func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": string(actor.Role)})
	})
	return r
}

func TestAuthAcceptsValidToken(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*model.User{
		5: {ID: 5, Email: "m@example.com", Role: model.RoleMentor, IsVerified: true},
	}}
	router := newAuthRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 5, testSecret))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"Mentor"`)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter(&fakeUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsBadSignature(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*model.User{
		5: {ID: 5, Role: model.RoleMentor},
	}}
	router := newAuthRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 5, "wrong-secret"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsUnknownUser(t *testing.T) {
	router := newAuthRouter(&fakeUserRepo{users: map[uint]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 99, testSecret))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A stored role outside the enumeration must never reach the policy layer.
func TestAuthRejectsUnknownRole(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*model.User{
		5: {ID: 5, Role: model.Role("Superuser")},
	}}
	router := newAuthRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 5, testSecret))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCurrentActorAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentActor(c)
	assert.False(t, ok)

	c.Set("actor", policy.Actor{ID: 1, Role: model.RoleAdmin})
	actor, ok := CurrentActor(c)
	assert.True(t, ok)
	assert.Equal(t, uint(1), actor.ID)
}
