package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL:    srv.URL,
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestListSendsRequestID(t *testing.T) {
	var gotPath, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"packages":[{"id":"1"}]}`))
	}))
	defer srv.Close()

	body, err := testClient(srv).List(context.Background(), Packages)
	require.NoError(t, err)
	assert.Equal(t, "/package/all", gotPath)
	assert.NotEmpty(t, gotRequestID)
	assert.JSONEq(t, `{"packages":[{"id":"1"}]}`, string(body))
}

func TestCreateSendsJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created"}`))
	}))
	defer srv.Close()

	err := testClient(srv).Create(context.Background(), Videos, map[string]any{"video_url": "https://x/v.mp4"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "https://x/v.mp4", gotBody["video_url"])
}

func TestBackendMessagePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"discount cannot exceed price"}`))
	}))
	defer srv.Close()

	err := testClient(srv).Update(context.Background(), MembershipPlans, "m1", map[string]any{})
	require.Error(t, err)

	var apiErr *ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "discount cannot exceed price", apiErr.Error())
	assert.Equal(t, "discount cannot exceed price", UserMessage(err))
}

func TestServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	err := testClient(srv).Delete(context.Background(), Subscriptions, "s1")
	require.Error(t, err)

	var apiErr *ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "backend returned status 500", apiErr.Error())
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := testClient(srv).List(context.Background(), Packages)
	require.Error(t, err)

	var apiErr *ApiError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "The server could not be reached. Please try again.", UserMessage(err))
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(srv).List(ctx, Videos)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPlansForPackagePath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"membershipPlans":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).PlansForPackage(context.Background(), "p42")
	require.NoError(t, err)
	assert.Equal(t, "/membership-plan/package/p42", gotPath)
}

func TestIDRequired(t *testing.T) {
	c := &Client{BaseURL: "http://localhost:0", HTTPClient: http.DefaultClient}

	_, err := c.Get(context.Background(), Packages, " ")
	assert.Error(t, err)
	assert.Error(t, c.Update(context.Background(), Packages, "", nil))
	assert.Error(t, c.Delete(context.Background(), Packages, ""))
}
