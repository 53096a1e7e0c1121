package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/streamvid/adminweb/internal/pkg/env"
	"github.com/streamvid/adminweb/internal/pkg/metrics/counter"
)

const (
	defaultBackendAPIURL  = "http://localhost:5000/api"
	defaultBackendTimeout = 15 * time.Second

	maxResponseBytes = 4 << 20
)

// Resource describes one backend collection: its route prefix and the
// envelope key its list endpoint may wrap the records in.
type Resource struct {
	Path      string
	PluralKey string
}

var (
	Packages        = Resource{Path: "/package", PluralKey: "packages"}
	MembershipPlans = Resource{Path: "/membership-plan", PluralKey: "membershipPlans"}
	Subscriptions   = Resource{Path: "/subscription", PluralKey: "subscriptions"}
	Videos          = Resource{Path: "/video", PluralKey: "videos"}
)

// Client talks to the backend REST API that owns all entity data. The panel
// never persists anything itself.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClientFromEnv() *Client {
	timeout := defaultBackendTimeout
	if raw := strings.TrimSpace(env.GetEnv("BACKEND_API_TIMEOUT", "")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return &Client{
		BaseURL: strings.TrimRight(env.GetEnv("BACKEND_API_URL", defaultBackendAPIURL), "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// List fetches the full collection for a resource (GET <path>/all) and
// returns the raw response body for the normalizer.
func (c *Client) List(ctx context.Context, res Resource) ([]byte, error) {
	return c.do(ctx, http.MethodGet, res.Path+"/all", nil)
}

// Get fetches a single record (GET <path>/:id).
func (c *Client) Get(ctx context.Context, res Resource, id string) ([]byte, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("api: %s get requires an id", res.Path)
	}
	return c.do(ctx, http.MethodGet, res.Path+"/"+id, nil)
}

// Create posts a new record (POST <path>/create).
func (c *Client) Create(ctx context.Context, res Resource, payload any) error {
	_, err := c.do(ctx, http.MethodPost, res.Path+"/create", payload)
	return err
}

// Update replaces a record (PUT <path>/update/:id).
func (c *Client) Update(ctx context.Context, res Resource, id string, payload any) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("api: %s update requires an id", res.Path)
	}
	_, err := c.do(ctx, http.MethodPut, res.Path+"/update/"+id, payload)
	return err
}

// Delete removes a record (DELETE <path>/delete/:id).
func (c *Client) Delete(ctx context.Context, res Resource, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("api: %s delete requires an id", res.Path)
	}
	_, err := c.do(ctx, http.MethodDelete, res.Path+"/delete/"+id, nil)
	return err
}

// PlansForPackage fetches the membership plans of one package
// (GET /membership-plan/package/:packageId).
func (c *Client) PlansForPackage(ctx context.Context, packageID string) ([]byte, error) {
	if strings.TrimSpace(packageID) == "" {
		return nil, fmt.Errorf("api: plans lookup requires a package id")
	}
	return c.do(ctx, http.MethodGet, MembershipPlans.Path+"/package/"+packageID, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	counter.AddRequest()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		counter.AddFailure()
		log.Errorf("backend request failed: %s %s request_id=%s err=%v", method, path, requestID, err)
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		counter.AddFailure()
		apiErr := newApiError(resp.StatusCode, body)
		log.Warnf("backend rejected request: %s %s request_id=%s status=%d message=%q",
			method, path, requestID, resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}
	return body, nil
}
