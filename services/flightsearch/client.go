package flightsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tazaticket/models"
	"tazaticket/utils"

	"go.uber.org/zap"
)

// tokenExpirySlack refreshes tokens a minute before the provider would.
const tokenExpirySlack = time.Minute

var httpClient = &http.Client{Timeout: 45 * time.Second}

// Config carries the provider credentials and endpoints.
type Config struct {
	OAuthURL     string
	CatalogURL   string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	AccessGroup  string
}

// Searcher executes one normalized flight search. The production Client hits
// the GDS; tests script results.
type Searcher interface {
	Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResults, error)
}

// Client is the Travelport catalog search client. Tokens are fetched lazily
// with a password grant and cached until shortly before expiry.
type Client struct {
	cfg Config

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Search posts the catalog payload and reduces the response. A nil result
// with nil error means the provider found nothing.
func (c *Client) Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResults, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(BuildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.CatalogURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("XAUTH_TRAVELPORT_ACCESSGROUP", c.cfg.AccessGroup)
	httpReq.Header.Set("Accept-Version", "11")
	httpReq.Header.Set("Content-Version", "11")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("flight search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token was revoked early; drop the cache so the next turn refetches.
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return nil, fmt.Errorf("flight search unauthorized")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight search returned status %d", resp.StatusCode)
	}

	var decoded catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return decoded.reduce()
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySlack)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"password"},
		"username":      {c.cfg.Username},
		"password":      {c.cfg.Password},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"scope":         {"openid"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OAuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access token")
	}

	c.token = tokenResp.AccessToken
	if tokenResp.ExpiresIn > 0 {
		c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	} else {
		c.tokenExpiry = time.Now().Add(25 * time.Minute)
	}
	utils.GetLogger().Debug("refreshed GDS access token", zap.Time("expiry", c.tokenExpiry))
	return c.token, nil
}
