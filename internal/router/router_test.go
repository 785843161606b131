package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platepost/backend/internal/api"
	"github.com/platepost/backend/internal/models"
	"github.com/platepost/backend/internal/service"
	"github.com/platepost/backend/internal/testhelpers"
)

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, testhelpers.MigrateModels(db))

	require.NoError(t, db.Create(&models.Kitchen{Name: "Italian"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Soup"}).Error)
	require.NoError(t, db.Create(&models.Measure{Name: "g"}).Error)
	require.NoError(t, db.Create(&models.Measure{Name: "To taste"}).Error)
	require.NoError(t, db.Create(&models.Ingredient{Name: "Beetroot"}).Error)
	require.NoError(t, db.Create(&models.Ingredient{Name: "Salt"}).Error)

	auth := service.NewAuthService(db, nil, "test-secret")
	engine := Setup(Handlers{
		Auth:           api.NewAuthHandler(auth),
		Catalog:        api.NewCatalogHandler(service.NewCatalogService(db, nil)),
		Recipe:         api.NewRecipeHandler(service.NewRecipeService(db), service.NewImageService(nil)),
		Engagement:     api.NewEngagementHandler(service.NewEngagementService(db)),
		TokenValidator: auth,
	})
	return &testApp{db: db, router: engine}
}

func (a *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) registerUser(t *testing.T, name, email string) (userID, token string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", name))
	require.NoError(t, w.WriteField("email", email))
	require.NoError(t, w.WriteField("password", "password123"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/register", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := a.do(t, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var out struct {
		User  struct{ ID string }
		Token string
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.User.ID, out.Token
}

func recipeForm(t *testing.T, userID string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := map[string]string{
		"recipeName":    "Borscht",
		"kitchen":       "1",
		"category":      "1",
		"user_id":       userID,
		"cookingTime":   "90",
		"cookingMethod": "1. Chop\n \n2. Simmer",
		"portion":       "4",
		"rating":        "0",
		"ingredients":   `[{"ingredient_id":1,"amount":"500","measure":1},{"ingredient_id":2,"amount":"","measure":2}]`,
		"weight":        "1200",
	}
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	part, err := w.CreateFormFile("recipePicture", "borscht.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func (a *testApp) createRecipe(t *testing.T, userID, token string) uint {
	t.Helper()
	body, contentType := recipeForm(t, userID)
	req := httptest.NewRequest("POST", "/recipes", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := a.do(t, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out.ID
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "Alice"))
	require.NoError(t, w.WriteField("email", "alice@example.com"))
	require.NoError(t, w.WriteField("password", "short"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/register", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := app.do(t, req)

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Contains(t, out.Errors, "password")
}

func TestLoginWrongPasswordIsFieldError(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "Alice", "alice@example.com")

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(
		`{"email":"alice@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := app.do(t, req)

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Invalid email or password.", out.Errors["password"])
}

func TestCatalogEndpoints(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/kitchen", "/category", "/measure"} {
		resp := app.do(t, httptest.NewRequest("GET", path, nil))
		require.Equal(t, http.StatusOK, resp.Code, path)

		var options []struct {
			Value uint   `json:"value"`
			Label string `json:"label"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &options))
		assert.NotEmpty(t, options, path)
	}

	resp := app.do(t, httptest.NewRequest("GET", "/ingredients?title=sal", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var options []struct {
		Value uint   `json:"value"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &options))
	require.Len(t, options, 1)
	assert.Equal(t, "Salt", options[0].Label)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	app := setupApp(t)

	body, contentType := recipeForm(t, "someone")
	req := httptest.NewRequest("POST", "/recipes", body)
	req.Header.Set("Content-Type", contentType)
	resp := app.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateRecipe(t *testing.T) {
	app := setupApp(t)
	userID, token := app.registerUser(t, "Alice", "alice@example.com")

	id := app.createRecipe(t, userID, token)
	require.NotZero(t, id)

	var recipe models.Recipe
	require.NoError(t, app.db.First(&recipe, id).Error)
	assert.Equal(t, models.StatusPending, recipe.Status)
	assert.Equal(t, userID, recipe.UserID.String())
	assert.Equal(t, []byte("fake-png"), recipe.Image)

	var joinRows int64
	require.NoError(t, app.db.Model(&models.RecipeIngredient{}).
		Where("recipe_id = ?", id).Count(&joinRows).Error)
	assert.Equal(t, int64(2), joinRows)
}

func TestCreateRecipeMissingFields(t *testing.T) {
	app := setupApp(t)
	_, token := app.registerUser(t, "Alice", "alice@example.com")

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("recipeName", "Borscht"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/recipes", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := app.do(t, req)

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	for _, field := range []string{"kitchen", "category", "cookingTime", "ingredients", "recipePicture", "weight"} {
		assert.Contains(t, out.Errors, field)
	}
	assert.NotContains(t, out.Errors, "recipeName")
}

func TestGetRecipe(t *testing.T) {
	app := setupApp(t)
	userID, token := app.registerUser(t, "Alice", "alice@example.com")
	id := app.createRecipe(t, userID, token)

	resp := app.do(t, httptest.NewRequest("GET", fmt.Sprintf("/recipes/%d", id), nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Name         string   `json:"name"`
		Kitchen      string   `json:"kitchen"`
		RecipeImage  string   `json:"recipe_image"`
		LikedUserIDs []string `json:"liked_user_ids"`
		Ingredients  []struct {
			Ingredient string `json:"ingredient"`
			Amount     string `json:"amount"`
			Measure    string `json:"measure"`
		} `json:"ingredients"`
		Author string `json:"author"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Borscht", out.Name)
	assert.Equal(t, "Italian", out.Kitchen)
	assert.Equal(t, "Alice", out.Author)
	assert.NotEmpty(t, out.RecipeImage)
	assert.NotNil(t, out.LikedUserIDs)
	require.Len(t, out.Ingredients, 2)
	assert.Equal(t, "To taste", out.Ingredients[1].Measure)
}

func TestGetRecipeNotFound(t *testing.T) {
	app := setupApp(t)
	resp := app.do(t, httptest.NewRequest("GET", "/recipes/999", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListRecipesExcludesPending(t *testing.T) {
	app := setupApp(t)
	userID, token := app.registerUser(t, "Alice", "alice@example.com")
	id := app.createRecipe(t, userID, token)

	resp := app.do(t, httptest.NewRequest("GET", "/recipes", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	require.NoError(t, app.db.Model(&models.Recipe{}).Where("id = ?", id).
		Update("status", models.StatusApproved).Error)

	resp = app.do(t, httptest.NewRequest("GET", "/recipes", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestLikeToggle(t *testing.T) {
	app := setupApp(t)
	userID, token := app.registerUser(t, "Alice", "alice@example.com")
	id := app.createRecipe(t, userID, token)
	_, fanToken := app.registerUser(t, "Bob", "bob@example.com")

	like := func() (bool, int) {
		req := httptest.NewRequest("POST", "/like",
			bytes.NewBufferString(fmt.Sprintf(`{"recipeId":%d}`, id)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+fanToken)
		resp := app.do(t, req)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var out struct {
			Liked     bool `json:"liked"`
			LikeCount int  `json:"like_count"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
		return out.Liked, out.LikeCount
	}

	liked, count := like()
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count = like()
	assert.False(t, liked)
	assert.Equal(t, 0, count)
}

func TestCommentFlow(t *testing.T) {
	app := setupApp(t)
	userID, token := app.registerUser(t, "Alice", "alice@example.com")
	id := app.createRecipe(t, userID, token)
	_, fanToken := app.registerUser(t, "Bob", "bob@example.com")

	// Post a comment.
	req := httptest.NewRequest("POST", fmt.Sprintf("/recipes/%d/comments", id),
		bytes.NewBufferString(`{"text":"Looks great"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+fanToken)
	resp := app.do(t, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	// Anyone can read them.
	resp = app.do(t, httptest.NewRequest("GET", fmt.Sprintf("/recipes/%d/comments", id), nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var listed []struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Bob", listed[0].Author)

	// Another user cannot edit it.
	req = httptest.NewRequest("POST", "/recipes/updateComment",
		bytes.NewBufferString(fmt.Sprintf(`{"comment_id":%d,"text":"hijack"}`, created.ID)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp = app.do(t, req)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Another user can report it.
	req = httptest.NewRequest("POST", "/recipes/reportComment",
		bytes.NewBufferString(fmt.Sprintf(`{"comment_id":%d,"recipe_id":%d,"reason":"spam"}`, created.ID, id)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp = app.do(t, req)
	assert.Equal(t, http.StatusCreated, resp.Code)

	// The owner deletes it.
	req = httptest.NewRequest("POST", "/recipes/deleteComment",
		bytes.NewBufferString(fmt.Sprintf(`{"comment_id":%d}`, created.ID)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+fanToken)
	resp = app.do(t, req)
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestLogout(t *testing.T) {
	app := setupApp(t)
	_, token := app.registerUser(t, "Alice", "alice@example.com")

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := app.do(t, req)
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	resp := app.do(t, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}
