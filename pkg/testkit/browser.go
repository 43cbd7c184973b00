// Package testkit drives an http.Handler the way a person drives the shop:
// a Browser keeps cookies between requests and follows redirects, so a test
// can walk a POST-redirect-GET flow in a few lines.
//
//	b := testkit.NewBrowser(t, handler)
//	b.PostForm("/cart/add", url.Values{"id": {"pen-gel-smooth"}}).
//		AssertStatus(200).
//		AssertContains("Smooth Gel Pen")
package testkit

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Browser is a stateful test client over an httptest server.
type Browser struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

// NewBrowser starts a test server for the handler. The server stops when
// the test finishes.
func NewBrowser(t *testing.T, handler http.Handler) *Browser {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &Browser{
		t:      t,
		server: server,
		client: &http.Client{Jar: jar},
	}
}

// Get fetches a page, following redirects.
func (b *Browser) Get(path string) *PageResponse {
	b.t.Helper()

	resp, err := b.client.Get(b.server.URL + path)
	require.NoError(b.t, err, "GET %s", path)
	return b.read(path, resp)
}

// PostForm submits a form, following the redirect like a browser would.
func (b *Browser) PostForm(path string, form url.Values) *PageResponse {
	b.t.Helper()

	resp, err := b.client.PostForm(b.server.URL+path, form)
	require.NoError(b.t, err, "POST %s", path)
	return b.read(path, resp)
}

// PostFormNoRedirect submits a form and stops at the first response, for
// asserting on the redirect itself.
func (b *Browser) PostFormNoRedirect(path string, form url.Values) *PageResponse {
	b.t.Helper()

	req, err := http.NewRequest(http.MethodPost, b.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	noFollow := &http.Client{
		Jar:           b.client.Jar,
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := noFollow.Do(req)
	require.NoError(b.t, err, "POST %s", path)
	return b.read(path, resp)
}

func (b *Browser) read(path string, resp *http.Response) *PageResponse {
	b.t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err, "read body of %s", path)

	return &PageResponse{
		t:          b.t,
		Path:       path,
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
		Body:       string(body),
	}
}

// PageResponse is one rendered page (or JSON body) with assertion helpers.
// Assertions return the response so they chain.
type PageResponse struct {
	t          *testing.T
	Path       string
	StatusCode int
	Location   string
	Body       string
}

func (p *PageResponse) AssertStatus(code int) *PageResponse {
	p.t.Helper()
	assert.Equal(p.t, code, p.StatusCode, "[%s] status code", p.Path)
	return p
}

func (p *PageResponse) AssertRedirect(location string) *PageResponse {
	p.t.Helper()
	assert.Equal(p.t, http.StatusSeeOther, p.StatusCode, "[%s] expected a redirect", p.Path)
	assert.Equal(p.t, location, p.Location, "[%s] redirect target", p.Path)
	return p
}

func (p *PageResponse) AssertContains(needle string) *PageResponse {
	p.t.Helper()
	assert.Contains(p.t, p.Body, needle, "[%s] page body", p.Path)
	return p
}

func (p *PageResponse) AssertNotContains(needle string) *PageResponse {
	p.t.Helper()
	assert.NotContains(p.t, p.Body, needle, "[%s] page body", p.Path)
	return p
}
