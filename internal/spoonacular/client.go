package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.spoonacular.com"

	// requestTimeout is fixed; a timed-out call is abandoned, never
	// retried automatically.
	requestTimeout = 10 * time.Second

	// searchPageSize is the fixed number of results requested per search.
	searchPageSize = 9
)

// Client calls the recipe provider's search and detail endpoints. The
// API key is not held on the client; it belongs to the session and is
// passed per call.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a provider client. baseURL may be empty to use the
// production endpoint; tests point it at a local server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Search performs one complex search against the provider. Results are
// requested sorted by ascending price per serving with recipe
// information and ingredients filled in. An empty result set is not an
// error.
func (c *Client) Search(ctx context.Context, apiKey string, filters Filters) ([]RecipeSummary, error) {
	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("number", strconv.Itoa(searchPageSize))
	params.Set("maxCalories", strconv.Itoa(filters.MaxCalories))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("sort", "price")

	if filters.Cuisine != "" && filters.Cuisine != "Any" {
		params.Set("cuisine", strings.ToLower(filters.Cuisine))
	}
	if filters.Diet != "" && filters.Diet != "None" {
		params.Set("diet", strings.ReplaceAll(strings.ToLower(filters.Diet), " ", ""))
	}

	var resp searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []RecipeSummary{}, nil
	}
	return resp.Results, nil
}

// GetDetail fetches the full recipe for one id. Markup is stripped from
// the summary and instructions before they are returned.
func (c *Client) GetDetail(ctx context.Context, apiKey string, recipeID int) (*RecipeDetail, error) {
	params := url.Values{}
	params.Set("apiKey", apiKey)

	var resp detailResponse
	path := fmt.Sprintf("/recipes/%d/information", recipeID)
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	detail := &RecipeDetail{
		ID:           resp.ID,
		Title:        resp.Title,
		Image:        resp.Image,
		Summary:      StripTags(resp.Summary),
		Instructions: StripTags(resp.Instructions),
		Ingredients:  make([]string, 0, len(resp.ExtendedIngredients)),
	}
	for _, ing := range resp.ExtendedIngredients {
		detail.Ingredients = append(detail.Ingredients, ing.Original)
	}
	return detail, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return ErrTimeout
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrQuotaExhausted
	default:
		return &ProviderError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
