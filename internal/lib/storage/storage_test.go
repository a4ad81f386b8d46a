package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/recruitly/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newFakeS3(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var mu sync.Mutex
	var requests []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, &requests
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()

	logger := zerolog.Nop()
	client, err := New(context.Background(), &config.StorageConfig{
		Endpoint:  endpoint,
		Region:    "us-east-1",
		Bucket:    "uploads",
		AccessKey: "key",
		SecretKey: "secret",
	}, &logger)
	require.NoError(t, err)
	return client
}

func TestClient_PutAndDelete(t *testing.T) {
	srv, requests := newFakeS3(t)
	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	payload := []byte("%PDF-1.4 resume")
	require.NoError(t, client.Put(ctx, "resumes/1/cv.pdf", bytes.NewReader(payload), int64(len(payload)), "application/pdf"))
	require.NoError(t, client.Delete(ctx, "resumes/1/cv.pdf"))

	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPut, (*requests)[0].method)
	assert.Equal(t, "/uploads/resumes/1/cv.pdf", (*requests)[0].path)
	assert.Contains(t, (*requests)[0].body, "%PDF-1.4 resume")
	assert.Equal(t, http.MethodDelete, (*requests)[1].method)
}

func TestClient_URL(t *testing.T) {
	client := newTestClient(t, "http://minio:9000/")
	assert.Equal(t, "http://minio:9000/uploads/logos/a.png", client.URL("/logos/a.png"))

	logger := zerolog.Nop()
	hosted, err := New(context.Background(), &config.StorageConfig{
		Region:    "eu-west-1",
		Bucket:    "recruitly",
		AccessKey: "key",
		SecretKey: "secret",
		PublicURL: "https://cdn.recruitly.io/",
	}, &logger)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.recruitly.io/logos/a.png", hosted.URL("logos/a.png"))
}

func TestNewKey(t *testing.T) {
	key := NewKey("resumes/12", "My CV.PDF")

	assert.True(t, strings.HasPrefix(key, "resumes/12/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotEqual(t, key, NewKey("resumes/12", "My CV.PDF"))
}
