package propublica

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	body []byte
	err  error
}

func (s *stubFetcher) Download(_ context.Context, _ string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(bytes.NewReader(s.body)), nil
}

func (s *stubFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	rc, err := s.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck
	return io.ReadAll(rc)
}

const orgPage = `
<html><body>
<p class="ntee-category">NTEE classification: Education / Higher Ed</p>
<a class="btn" target="_blank" href="/download?object_id=202103109349301000">XML</a>
<a class="btn" target="_blank" href="/download?object_id=202303109349301000">XML</a>
<a class="btn" target="_blank" href="/download?object_id=202203109349301000">XML</a>
<a class="btn" target="_blank" href="/download?object_id=201903109349301000">PDF</a>
</body></html>`

func TestDiscoverFilings(t *testing.T) {
	f := &stubFetcher{body: []byte(orgPage)}
	listing, err := DiscoverFilings(context.Background(), f, "https://example.org/org/1", Options{BaseURL: "https://pp.test"})
	require.NoError(t, err)

	assert.Equal(t, "Education", listing.Category)
	require.Len(t, listing.DocumentURLs, 3)
	// Newest first: object IDs sort descending.
	assert.Equal(t, "https://pp.test/nonprofits/download-xml?object_id=202303109349301000", listing.DocumentURLs[0])
	assert.Equal(t, "https://pp.test/nonprofits/download-xml?object_id=202203109349301000", listing.DocumentURLs[1])
	assert.Equal(t, "https://pp.test/nonprofits/download-xml?object_id=202103109349301000", listing.DocumentURLs[2])
}

func TestDiscoverFilings_CapsAtMaxFilings(t *testing.T) {
	var page bytes.Buffer
	page.WriteString("<html><body>")
	for _, id := range []string{"201801", "201901", "202001", "202101", "202201", "202301"} {
		page.WriteString(`<a class="btn" target="_blank" href="/d?object_id=` + id + `">XML</a>`)
	}
	page.WriteString("</body></html>")

	f := &stubFetcher{body: page.Bytes()}
	listing, err := DiscoverFilings(context.Background(), f, "u", Options{BaseURL: "https://pp.test"})
	require.NoError(t, err)

	require.Len(t, listing.DocumentURLs, 5)
	assert.Contains(t, listing.DocumentURLs[0], "202301")
	assert.NotContains(t, listing.DocumentURLs, "https://pp.test/nonprofits/download-xml?object_id=201801")
}

func TestDiscoverFilings_MissingCategory(t *testing.T) {
	f := &stubFetcher{body: []byte(`<html><body><p>no category here</p></body></html>`)}
	listing, err := DiscoverFilings(context.Background(), f, "u", Options{})
	require.NoError(t, err)

	assert.Equal(t, "Unknown", listing.Category)
	assert.Empty(t, listing.DocumentURLs)
}

func TestDiscoverFilings_FetchError(t *testing.T) {
	f := &stubFetcher{err: assert.AnError}
	_, err := DiscoverFilings(context.Background(), f, "u", Options{})
	assert.Error(t, err)
}
