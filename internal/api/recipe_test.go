package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recipfy/recipe-service/internal/middleware"
	"github.com/recipfy/recipe-service/internal/mocks"
	"github.com/recipfy/recipe-service/internal/model"
	"github.com/recipfy/recipe-service/internal/testhelpers"
)

const recipePath = BasePath + "/recipe"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(zerolog.Nop()),
		middleware.ErrorHandler(),
	)
	return router
}

func setupRecipeTestRouter(t *testing.T) *gin.Engine {
	router := newTestRouter()
	SetupAPI(router, testhelpers.SetupSQLite(t))
	return router
}

// PerformRequest sends body as JSON unless it is already a string
func PerformRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeRecipes(t *testing.T, w *httptest.ResponseRecorder) []model.Recipe {
	t.Helper()
	var recipes []model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	return recipes
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusText(status), body.Error)
}

func seedScenario(t *testing.T, router http.Handler) {
	t.Helper()
	w := PerformRequest(router, http.MethodPost, recipePath+"/save-all", []map[string]interface{}{
		{"name": "Omelette", "description": "Quick breakfast", "category": "Breakfast", "cookingTime": 10},
		{"name": "Roast", "description": "Slow Sunday roast", "category": "Dinner", "cookingTime": 120},
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSaveRecipeAndGetByID(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := PerformRequest(router, http.MethodPost, recipePath+"/save", map[string]interface{}{
		"name":        "Omelette",
		"description": "Quick breakfast",
		"category":    "Breakfast",
		"cookingTime": 10,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = PerformRequest(router, http.MethodGet, recipePath+"/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeRecipes(t, w)
	require.Len(t, all, 1)
	assert.NotZero(t, all[0].ID)

	w = PerformRequest(router, http.MethodGet, fmt.Sprintf("%s/id?id=%d", recipePath, all[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, all[0].ID, found.ID)
	assert.Equal(t, "Omelette", found.Name)
	assert.Equal(t, "Quick breakfast", found.Description)
	assert.Equal(t, "Breakfast", found.Category)
	assert.Equal(t, int64(10), found.CookingTime)
}

func TestListRecipesByCookingTime(t *testing.T) {
	router := setupRecipeTestRouter(t)
	seedScenario(t, router)

	w := PerformRequest(router, http.MethodGet, recipePath+"/all?cookingTime=60", nil)
	require.Equal(t, http.StatusOK, w.Code)
	quick := decodeRecipes(t, w)
	require.Len(t, quick, 1)
	assert.Equal(t, "Omelette", quick[0].Name)

	w = PerformRequest(router, http.MethodGet, recipePath+"/all?cookingTime=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeRecipes(t, w), 2)

	w = PerformRequest(router, http.MethodGet, recipePath+"/all?cookingTime=-5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeRecipes(t, w), 2)

	w = PerformRequest(router, http.MethodGet, recipePath+"/all?cookingTime=soon", nil)
	assertErrorBody(t, w, http.StatusBadRequest)
}

func TestRecipeLookups(t *testing.T) {
	router := setupRecipeTestRouter(t)
	seedScenario(t, router)

	t.Run("by name", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, recipePath+"/Roast", nil)
		require.Equal(t, http.StatusOK, w.Code)
		recipes := decodeRecipes(t, w)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Dinner", recipes[0].Category)
	})

	t.Run("unknown name", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, recipePath+"/Paella", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeRecipes(t, w))
	})

	t.Run("by category and name", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, recipePath+"/Breakfast/Omelette", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var recipe model.Recipe
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
		assert.Equal(t, "Omelette", recipe.Name)
	})

	t.Run("category and name mismatch", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, recipePath+"/Dinner/Omelette", nil)
		assertErrorBody(t, w, http.StatusNotFound)
	})

	t.Run("by category", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, recipePath+"/category/Dinner", nil)
		require.Equal(t, http.StatusOK, w.Code)
		recipes := decodeRecipes(t, w)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Roast", recipes[0].Name)
	})

	t.Run("by description keyword", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, recipePath+"/desc/all/Sunday", nil)
		require.Equal(t, http.StatusOK, w.Code)
		recipes := decodeRecipes(t, w)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Roast", recipes[0].Name)
	})
}

func TestGetRecipeByIDErrors(t *testing.T) {
	router := setupRecipeTestRouter(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{name: "missing id", query: "", status: http.StatusBadRequest},
		{name: "non numeric id", query: "?id=abc", status: http.StatusBadRequest},
		{name: "zero id", query: "?id=0", status: http.StatusInternalServerError},
		{name: "negative id", query: "?id=-1", status: http.StatusInternalServerError},
		{name: "unknown id", query: "?id=999", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := PerformRequest(router, http.MethodGet, recipePath+"/id"+tt.query, nil)
			assertErrorBody(t, w, tt.status)
		})
	}
}

func TestSaveRecipeBodies(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := PerformRequest(router, http.MethodPost, recipePath+"/save", "null")
	assertErrorBody(t, w, http.StatusInternalServerError)

	w = PerformRequest(router, http.MethodPost, recipePath+"/save", `{"name": `)
	assertErrorBody(t, w, http.StatusBadRequest)

	w = PerformRequest(router, http.MethodPost, recipePath+"/save-all", `{"name": "not a list"}`)
	assertErrorBody(t, w, http.StatusBadRequest)

	w = PerformRequest(router, http.MethodGet, recipePath+"/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRecipes(t, w))
}

func TestDeleteRecipeRoutes(t *testing.T) {
	router := setupRecipeTestRouter(t)
	seedScenario(t, router)

	w := PerformRequest(router, http.MethodGet, recipePath+"/Omelette", nil)
	require.Equal(t, http.StatusOK, w.Code)
	omelette := decodeRecipes(t, w)[0]

	w = PerformRequest(router, http.MethodDelete, fmt.Sprintf("%s/delete/%d", recipePath, omelette.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = PerformRequest(router, http.MethodGet, fmt.Sprintf("%s/id?id=%d", recipePath, omelette.ID), nil)
	assertErrorBody(t, w, http.StatusNotFound)

	w = PerformRequest(router, http.MethodDelete, recipePath+"/delete/abc", nil)
	assertErrorBody(t, w, http.StatusBadRequest)

	w = PerformRequest(router, http.MethodDelete, recipePath+"/delete/0", nil)
	assertErrorBody(t, w, http.StatusInternalServerError)

	w = PerformRequest(router, http.MethodDelete, recipePath+"/delete", nil)
	assertErrorBody(t, w, http.StatusBadRequest)

	w = PerformRequest(router, http.MethodDelete, recipePath+"/delete?category=Dinner", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, recipePath+"/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRecipes(t, w))
}

func TestUpdateRoutes(t *testing.T) {
	router := setupRecipeTestRouter(t)
	seedScenario(t, router)

	w := PerformRequest(router, http.MethodGet, recipePath+"/Roast", nil)
	require.Equal(t, http.StatusOK, w.Code)
	roast := decodeRecipes(t, w)[0]

	w = PerformRequest(router, http.MethodPut, fmt.Sprintf("%s/update?id=%d", recipePath, roast.ID), map[string]interface{}{
		"name":        "ignored",
		"description": "Beef with gravy",
		"category":    "ignored",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodPut, fmt.Sprintf("%s/update/category?id=%d", recipePath, roast.ID), map[string]interface{}{
		"description": "ignored",
		"category":    "Lunch",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, fmt.Sprintf("%s/id?id=%d", recipePath, roast.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Roast", updated.Name)
	assert.Equal(t, "Beef with gravy", updated.Description)
	assert.Equal(t, "Lunch", updated.Category)
	assert.Equal(t, int64(120), updated.CookingTime)

	w = PerformRequest(router, http.MethodPut, recipePath+"/update?id=999", map[string]interface{}{"description": "x"})
	assertErrorBody(t, w, http.StatusNotFound)

	w = PerformRequest(router, http.MethodPut, recipePath+"/update", map[string]interface{}{"description": "x"})
	assertErrorBody(t, w, http.StatusBadRequest)

	w = PerformRequest(router, http.MethodPut, fmt.Sprintf("%s/update?id=%d", recipePath, roast.ID), "null")
	assertErrorBody(t, w, http.StatusBadRequest)

	w = PerformRequest(router, http.MethodPut, fmt.Sprintf("%s/update/category?id=%d", recipePath, roast.ID), map[string]interface{}{"category": ""})
	assertErrorBody(t, w, http.StatusInternalServerError)
}

func TestServiceErrorsAreNotLeaked(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("GetAllRecipes", mock.Anything).Return(nil, assert.AnError)

	router := newTestRouter()
	RegisterRoutes(router, stubPinger{}, svc)

	w := PerformRequest(router, http.MethodGet, recipePath+"/all", nil)
	assertErrorBody(t, w, http.StatusInternalServerError)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	svc.AssertExpectations(t)
}

type stubPinger struct {
	err error
}

func (p stubPinger) HealthCheck(context.Context) error {
	return p.err
}

func TestHealthCheck(t *testing.T) {
	router := setupRecipeTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := PerformRequest(router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "up", body["database"])
	}
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	router := newTestRouter()
	RegisterRoutes(router, stubPinger{err: assert.AnError}, new(mocks.MockRecipeService))

	w := PerformRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}
