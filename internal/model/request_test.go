package model_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaserth/hopwire/internal/model"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNewRejectsUnparsableURL(t *testing.T) {
	_, err := model.New("://missing.scheme")
	var invalid model.InvalidURLError
	require.ErrorAs(t, err, &invalid)
}

func TestNewDefaults(t *testing.T) {
	req, err := model.New("http://example.com/a")
	require.NoError(t, err)

	pr := req.Prepare(mustParse(t, "http://example.com/a"))
	assert.Equal(t, "GET", pr.Method)
	assert.True(t, req.FollowRedirects())
	assert.Nil(t, req.DefaultEncoding())
}

func TestAddQueryParamAppends(t *testing.T) {
	req, err := model.New("http://example.com/s?fixed=1")
	require.NoError(t, err)
	req.AddQueryParam("q", "x y")
	req.AddQueryParam("q", "again")
	req.AddQueryParam("n", 3)

	u, err := req.Consume()
	require.NoError(t, err)
	assert.Equal(t, "fixed=1&q=x+y&q=again&n=3", u.RawQuery)
}

type stamp struct{ t time.Time }

func (s stamp) String() string { return s.t.UTC().Format(time.RFC3339) }

func TestHeaderValueConversion(t *testing.T) {
	req, err := model.New("http://example.com/")
	require.NoError(t, err)

	require.NoError(t, req.SetHeader("X-Count", 42))
	require.NoError(t, req.SetHeader("X-Flag", true))
	require.NoError(t, req.SetHeader("X-Ratio", 0.5))
	require.NoError(t, req.SetHeader("X-Raw", []byte("bytes")))
	require.NoError(t, req.SetHeader("X-Stamp", stamp{time.Unix(0, 0)}))

	pr := req.Prepare(mustParse(t, "http://example.com/"))
	assert.Equal(t, "42", pr.Header.Get("X-Count"))
	assert.Equal(t, "true", pr.Header.Get("X-Flag"))
	assert.Equal(t, "0.5", pr.Header.Get("X-Ratio"))
	assert.Equal(t, "bytes", pr.Header.Get("X-Raw"))
	assert.Equal(t, "1970-01-01T00:00:00Z", pr.Header.Get("X-Stamp"))
}

func TestHeaderValidation(t *testing.T) {
	req, err := model.New("http://example.com/")
	require.NoError(t, err)

	assert.Error(t, req.SetHeader("X-Bad", "line\r\nbreak"))
	assert.Error(t, req.SetHeader("bad name", "v"))
	assert.Error(t, req.SetHeader("X-Type", struct{}{}))
}

func TestSetHeaderReplacesAppendKeeps(t *testing.T) {
	req, err := model.New("http://example.com/")
	require.NoError(t, err)

	require.NoError(t, req.SetHeader("Accept", "text/html"))
	require.NoError(t, req.SetHeader("Accept", "text/plain"))
	require.NoError(t, req.AppendHeader("Accept", "application/json"))

	pr := req.Prepare(mustParse(t, "http://example.com/"))
	assert.Equal(t, []string{"text/plain", "application/json"}, pr.Header.Values("Accept"))
}

func TestPrepareForcesEngineHeaders(t *testing.T) {
	req, err := model.New("http://example.com/")
	require.NoError(t, err)
	require.NoError(t, req.SetHeader("Connection", "keep-alive"))
	require.NoError(t, req.SetHeader("Host", "spoofed.example"))

	hop := mustParse(t, "http://real.example:8080/p")
	pr := req.Prepare(hop)
	assert.Equal(t, "close", pr.Header.Get("Connection"))
	assert.Empty(t, pr.Header.Values("Host"))
	assert.Equal(t, "real.example:8080", pr.HeaderHost)
}

func TestPrepareDoesNotMutateDescriptor(t *testing.T) {
	req, err := model.New("http://example.com/")
	require.NoError(t, err)
	require.NoError(t, req.SetHeader("Connection", "keep-alive"))

	first := req.Prepare(mustParse(t, "http://a.example/"))
	first.Header.Set("X-Hop-Only", "1")

	second := req.Prepare(mustParse(t, "http://b.example/"))
	assert.Empty(t, second.Header.Get("X-Hop-Only"))
	assert.Equal(t, "close", second.Header.Get("Connection"))
}

func TestConsumeOnce(t *testing.T) {
	req, err := model.New("http://example.com/")
	require.NoError(t, err)

	u, err := req.Consume()
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host)

	_, err = req.Consume()
	require.ErrorIs(t, err, model.ErrRequestReused)
}
