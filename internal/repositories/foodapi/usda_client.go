// Package foodapi provides the network food-lookup backend (USDA FoodData
// Central) and the bundled static food list used as its offline fallback.
package foodapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
)

// DefaultBaseURL is the FoodData Central API root. The DEMO_KEY works for
// light usage without registration.
const (
	DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"
	DefaultAPIKey  = "DEMO_KEY"

	searchPageSize = 25
)

// USDAClient searches the FoodData Central database and maps results into
// candidates with Edamam-style nutrient keys and per-100g amounts.
type USDAClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ portsrepo.FoodSource = (*USDAClient)(nil)

// NewUSDAClient builds a client. Empty baseURL and apiKey fall back to the
// public defaults; timeout 0 falls back to 10 seconds.
func NewUSDAClient(baseURL, apiKey string, timeout time.Duration) *USDAClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &USDAClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Foods []struct {
		FdcID         int64  `json:"fdcId"`
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// SearchFoods calls the /foods/search endpoint. Nutrient values come back per
// 100 g, so every candidate carries measure "100g".
func (c *USDAClient) SearchFoods(ctx context.Context, query string) ([]domain.FoodCandidate, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	params.Set("pageSize", fmt.Sprintf("%d", searchPageSize))
	params.Set("dataType", "Foundation,SR Legacy")

	endpoint := fmt.Sprintf("%s/foods/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create food search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call food search API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse food search JSON: %w", err)
	}

	candidates := make([]domain.FoodCandidate, 0, len(sr.Foods))
	for _, food := range sr.Foods {
		var nutrients domain.NutrientsPer100g
		for _, n := range food.FoodNutrients {
			switch n.NutrientName {
			case "Energy":
				nutrients.EnergyKcal = n.Value
			case "Protein":
				nutrients.Protein = n.Value
			case "Carbohydrate, by difference":
				nutrients.Carbs = n.Value
			case "Total lipid (fat)":
				nutrients.Fat = n.Value
			}
		}
		candidates = append(candidates, domain.FoodCandidate{
			ID:        fmt.Sprintf("fdc-%d", food.FdcID),
			Label:     food.Description,
			Nutrients: nutrients,
			Measure:   "100g",
		})
	}
	return candidates, nil
}
