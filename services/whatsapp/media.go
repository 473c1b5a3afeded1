package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxMediaBytes caps inbound voice-note downloads (Twilio itself caps media
// at 16MB; a one-minute voice note is far under this).
const maxMediaBytes = 16 * 1024 * 1024

var mediaHTTPClient = &http.Client{Timeout: 30 * time.Second}

// MediaDownloader fetches inbound message media (voice notes).
type MediaDownloader interface {
	Download(ctx context.Context, mediaURL string) ([]byte, error)
}

// TwilioMediaDownloader fetches Twilio-hosted media with basic auth.
type TwilioMediaDownloader struct {
	AccountSID string
	AuthToken  string
}

func (d *TwilioMediaDownloader) Download(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build media request: %w", err)
	}
	if d.AccountSID != "" {
		req.SetBasicAuth(d.AccountSID, d.AuthToken)
	}

	resp, err := mediaHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media download failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read media body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media body was empty")
	}
	return data, nil
}

// graphMediaBaseURL is where Meta media IDs resolve to download URLs.
const graphMediaBaseURL = "https://graph.facebook.com/v19.0"

// MetaMediaDownloader fetches Meta-hosted media. The Cloud API hands webhooks
// a media ID, not a URL: the ID is first resolved through the Graph API and
// the returned (short-lived) URL fetched with the same bearer token.
type MetaMediaDownloader struct {
	AccessToken string
	// GraphBaseURL overrides the Graph endpoint; empty means production.
	GraphBaseURL string
	HTTPClient   *http.Client
}

func (d *MetaMediaDownloader) Download(ctx context.Context, mediaID string) ([]byte, error) {
	if mediaID == "" {
		return nil, fmt.Errorf("empty media id")
	}

	base := d.GraphBaseURL
	if base == "" {
		base = graphMediaBaseURL
	}

	lookup, err := d.get(ctx, base+"/"+url.PathEscape(mediaID))
	if err != nil {
		return nil, fmt.Errorf("media lookup failed: %w", err)
	}
	var meta struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(lookup, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode media lookup: %w", err)
	}
	if meta.URL == "" {
		return nil, fmt.Errorf("media lookup returned no url")
	}

	data, err := d.get(ctx, meta.URL)
	if err != nil {
		return nil, fmt.Errorf("media download failed: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media body was empty")
	}
	return data, nil
}

func (d *MetaMediaDownloader) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+d.AccessToken)

	client := d.HTTPClient
	if client == nil {
		client = mediaHTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes))
}

// ChannelMediaDownloader routes a media reference to the provider that hosts
// it: full URLs are Twilio-hosted media, bare IDs are Meta media.
type ChannelMediaDownloader struct {
	Twilio MediaDownloader
	Meta   MediaDownloader
}

func (d *ChannelMediaDownloader) Download(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		if d.Twilio == nil {
			return nil, fmt.Errorf("twilio media not configured")
		}
		return d.Twilio.Download(ctx, ref)
	}
	if d.Meta == nil {
		return nil, fmt.Errorf("meta media not configured")
	}
	return d.Meta.Download(ctx, ref)
}
