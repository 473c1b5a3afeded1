package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaMediaDownloader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/MEDIA123":
			fmt.Fprintf(w, `{"url": %q, "mime_type": "audio/ogg"}`, "http://"+r.Host+"/binary")
		case "/binary":
			w.Write([]byte("OggS...audio..."))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	d := &MetaMediaDownloader{
		AccessToken:  "tok",
		GraphBaseURL: srv.URL,
		HTTPClient:   srv.Client(),
	}

	data, err := d.Download(context.Background(), "MEDIA123")
	require.NoError(t, err)
	assert.Equal(t, []byte("OggS...audio..."), data)
	assert.Equal(t, "Bearer tok", gotAuth, "both hops carry the bearer token")
}

func TestMetaMediaDownloaderLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	d := &MetaMediaDownloader{GraphBaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := d.Download(context.Background(), "GONE")
	assert.Error(t, err)

	_, err = d.Download(context.Background(), "")
	assert.Error(t, err)
}

func TestMetaMediaDownloaderNoURLInLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"mime_type": "audio/ogg"}`)
	}))
	defer srv.Close()

	d := &MetaMediaDownloader{GraphBaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := d.Download(context.Background(), "MEDIA123")
	assert.Error(t, err)
}

// refRecorder records which downloader a reference was routed to.
type refRecorder struct {
	ref string
}

func (r *refRecorder) Download(ctx context.Context, ref string) ([]byte, error) {
	r.ref = ref
	return []byte("x"), nil
}

func TestChannelMediaDownloaderRouting(t *testing.T) {
	twilio := &refRecorder{}
	meta := &refRecorder{}
	d := &ChannelMediaDownloader{Twilio: twilio, Meta: meta}

	_, err := d.Download(context.Background(), "https://api.twilio.com/media/ME123")
	require.NoError(t, err)
	assert.Equal(t, "https://api.twilio.com/media/ME123", twilio.ref)
	assert.Empty(t, meta.ref)

	_, err = d.Download(context.Background(), "1234567890")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", meta.ref)
}

func TestChannelMediaDownloaderUnconfigured(t *testing.T) {
	d := &ChannelMediaDownloader{}
	_, err := d.Download(context.Background(), "https://api.twilio.com/media/ME123")
	assert.Error(t, err)
	_, err = d.Download(context.Background(), "1234567890")
	assert.Error(t, err)
}
