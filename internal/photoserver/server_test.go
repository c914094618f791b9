package photoserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/rest"
)

func serve(t *testing.T, cfg Config, fx Fixtures) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(cfg, fx, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_ListAndDetail(t *testing.T) {
	srv := serve(t, DefaultConfig(), DefaultFixtures())

	resp, err := http.Get(srv.URL + "/photos")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var list []photos.PhotoDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, defaultFixtureCount)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, defaultFixtureCount, list[len(list)-1].ID)

	resp2, err := http.Get(srv.URL + "/photos/3")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var one photos.PhotoDTO
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&one))
	assert.Equal(t, list[2], one)
}

func TestServer_DetailErrors(t *testing.T) {
	srv := serve(t, DefaultConfig(), DefaultFixtures())

	for path, want := range map[string]int{
		"/photos/999": http.StatusNotFound,
		"/photos/abc": http.StatusBadRequest,
		"/nothing":    http.StatusNotFound,
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestServer_FailStatusAndLatency(t *testing.T) {
	srv := serve(t, Config{FailStatus: http.StatusServiceUnavailable, Latency: 20 * time.Millisecond}, DefaultFixtures())

	start := time.Now()
	resp, err := http.Get(srv.URL + "/photos")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestServer_WorksWithPhotoService(t *testing.T) {
	srv := serve(t, DefaultConfig(), Fixtures{Photos: []photos.PhotoDTO{{ID: 7, Title: "seven"}}})
	svc := photos.NewService(rest.NewClient(rest.WithTimeout(2*time.Second)), srv.URL)

	list, err := svc.FetchList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []photos.Photo{{ID: 7, Title: "seven"}}, list)

	_, err = svc.FetchDetail(context.Background(), 8)
	assert.ErrorIs(t, err, rest.StatusError(http.StatusNotFound))
}

func TestServer_LogsRequestIDFromClient(t *testing.T) {
	var buf bytes.Buffer
	srv := httptest.NewServer(New(DefaultConfig(), DefaultFixtures(), zerolog.New(&buf)).Handler())
	t.Cleanup(srv.Close)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/photos/1", nil)
	require.NoError(t, err)
	req.Header.Set(rest.HeaderRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	srv.Close()

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "abc-123", line["request_id"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, "/photos/1", line["uri"])
}

func TestLoadFixtures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
photos:
  - id: 1
    title: accusamus beatae
    url: https://via.placeholder.com/600/92c952
    thumbnailUrl: https://via.placeholder.com/150/92c952
  - id: 2
    title: reprehenderit
`), 0o644))

	fx, err := LoadFixtures(good)
	require.NoError(t, err)
	require.Len(t, fx.Photos, 2)
	assert.Equal(t, "https://via.placeholder.com/150/92c952", fx.Photos[0].ThumbnailURL)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("photos:\n  - id: 1\n  - id: 1\n"), 0o644))
	_, err = LoadFixtures(dup)
	assert.ErrorContains(t, err, "duplicate id")

	_, err = LoadFixtures(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigFixtures(t *testing.T) {
	fx, err := DefaultConfig().Fixtures()
	require.NoError(t, err)
	assert.Len(t, fx.Photos, defaultFixtureCount)

	path := filepath.Join(t.TempDir(), "photos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("photos:\n  - id: 7\n    title: seven\n"), 0o644))
	cfg := DefaultConfig()
	cfg.FixturesPath = path
	fx, err = cfg.Fixtures()
	require.NoError(t, err)
	require.Len(t, fx.Photos, 1)
	assert.Equal(t, 7, fx.Photos[0].ID)

	cfg.FixturesPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Fixtures()
	assert.ErrorContains(t, err, "read fixtures")
}
