package subriff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://subriff.com"

// Size filter categories recognized by the subriff API.
const (
	SizeMediumSmall = "medium-small"
	SizeMedium      = "medium"
	SizeLarge       = "large"
	SizeXLarge      = "xlarge"
)

// Sort periods recognized by the subriff API.
const (
	SortDaily  = "daily"
	SortWeekly = "weekly"
)

// Subreddit is one raw record from a GetSubreddits result page.
// Growth percentages may be null in the payload; a missing value
// decodes to 0.
type Subreddit struct {
	DisplayName   string  `json:"displayName"`
	Subscribers   int     `json:"subscribers"`
	DailyGrowth   float64 `json:"dailyGrowthPercentage"`
	WeeklyGrowth  float64 `json:"weeklyGrowthPercentage"`
	IsNsfw        bool    `json:"isNsfw"`
	InternalNsfw  bool    `json:"internal_IsNsfw"`
	SuggestedNsfw bool    `json:"suggested_Internal_IsNsfw"`
}

// Nsfw reports whether any of the three NSFW flags is set. The API is
// queried with nsfw=false but still returns flagged entries, so callers
// must filter on this.
func (s Subreddit) Nsfw() bool {
	return s.IsNsfw || s.InternalNsfw || s.SuggestedNsfw
}

// Client fetches trending-subreddit pages from subriff.com.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a subriff client. An empty baseURL or zero timeout
// falls back to the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Fetch retrieves the first result page for one (size filter, sort period)
// query. Result order is rank order. Any transport, status, or decode
// failure is returned as an error; callers treat that as zero records for
// the query.
func (c *Client) Fetch(ctx context.Context, sizeFilter, sortBy string) ([]Subreddit, error) {
	params := url.Values{
		"page":            {"1"},
		"sizeFilter":      {sizeFilter},
		"searchTerm":      {""},
		"sortBy":          {sortBy},
		"growthType":      {"percent"},
		"sortColumn":      {""},
		"sortDirection":   {""},
		"dateFilter":      {"all"},
		"allowsPromotion": {"false"},
		"nsfw":            {"false"},
	}

	reqURL := c.baseURL + "/Home/GetSubreddits?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create subriff request: %w", err)
	}
	req.Header.Set("User-Agent", "subradar/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", sizeFilter, sortBy, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subriff %s/%s status %d", sizeFilter, sortBy, resp.StatusCode)
	}

	var payload struct {
		Subreddits []Subreddit `json:"subreddits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", sizeFilter, sortBy, err)
	}

	return payload.Subreddits, nil
}
