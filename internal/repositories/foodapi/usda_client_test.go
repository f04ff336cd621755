package foodapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/repositories/foodapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayload = `{
	"foods": [
		{
			"fdcId": 169756,
			"description": "Rice, white, long-grain, cooked",
			"foodNutrients": [
				{"nutrientName": "Energy", "value": 130},
				{"nutrientName": "Protein", "value": 2.69},
				{"nutrientName": "Carbohydrate, by difference", "value": 28.17},
				{"nutrientName": "Total lipid (fat)", "value": 0.28},
				{"nutrientName": "Sodium, Na", "value": 1}
			]
		},
		{
			"fdcId": 170000,
			"description": "Rice flour",
			"foodNutrients": []
		}
	]
}`

func TestUSDAClient_SearchFoods(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/foods/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := foodapi.NewUSDAClient(server.URL, "test-key", time.Second)
	candidates, err := client.SearchFoods(context.Background(), "rice")

	require.NoError(t, err)
	assert.Equal(t, "rice", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, candidates, 2)
	assert.Equal(t, domain.FoodCandidate{
		ID:    "fdc-169756",
		Label: "Rice, white, long-grain, cooked",
		Nutrients: domain.NutrientsPer100g{
			EnergyKcal: 130, Protein: 2.69, Carbs: 28.17, Fat: 0.28,
		},
		Measure: "100g",
	}, candidates[0])
	// Unmapped nutrients are ignored and missing ones default to zero.
	assert.Equal(t, domain.NutrientsPer100g{}, candidates[1].Nutrients)
}

func TestUSDAClient_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer server.Close()

	client := foodapi.NewUSDAClient(server.URL, "", time.Second)
	candidates, err := client.SearchFoods(context.Background(), "unobtainium")

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestUSDAClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := foodapi.NewUSDAClient(server.URL, "", time.Second)
	_, err := client.SearchFoods(context.Background(), "rice")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestUSDAClient_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := foodapi.NewUSDAClient(server.URL, "", time.Second)
	_, err := client.SearchFoods(context.Background(), "rice")

	assert.Error(t, err)
}

func TestUSDAClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := foodapi.NewUSDAClient(server.URL, "", time.Second)
	_, err := client.SearchFoods(ctx, "rice")

	assert.Error(t, err)
}

func TestStaticFoods_WellFormed(t *testing.T) {
	foods := foodapi.StaticFoods()

	require.NotEmpty(t, foods)
	seen := map[string]bool{}
	for _, food := range foods {
		assert.NotEmpty(t, food.ID)
		assert.NotEmpty(t, food.Label)
		assert.False(t, seen[food.ID], "duplicate static food id %s", food.ID)
		seen[food.ID] = true
		assert.GreaterOrEqual(t, food.Nutrients.EnergyKcal, 0.0)
	}
}
