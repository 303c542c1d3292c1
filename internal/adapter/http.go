package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/avolkov/jobscout/internal/config"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/utils"
	"github.com/avolkov/jobscout/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/JSON implementation of [APIClient].
// It normalises and validates the base URL from apiCfg.Address and configures
// the underlying resty client with the resolved base URL and request timeout.
// Every outbound request is tagged with a fresh X-Request-Id so client and
// server logs can be correlated.
//
// Returns an error if apiCfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPAPIClient(apiCfg config.API, log *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(apiCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", utils.NewRequestID())
			return nil
		})

	return &httpAPIClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ExchangeToken implements [APIClient]. The token endpoint follows the OAuth2
// password-flow convention: credentials go out form-encoded, the token comes
// back as JSON.
func (h *httpAPIClient) ExchangeToken(ctx context.Context, username, password string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/token")
	if err != nil {
		return models.Token{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.Token{}, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return models.Token{}, fmt.Errorf("token response without access_token")
	}

	return token, nil
}

// CreateUser implements [APIClient]. It POSTs the registration payload to
// POST /users/. The endpoint is unauthenticated.
func (h *httpAPIClient) CreateUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/users/")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}

// CurrentUser implements [APIClient].
func (h *httpAPIClient) CurrentUser(ctx context.Context, cred string) (models.User, error) {
	resp, err := h.authedRequest(ctx, cred).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return user, nil
}

// UpdateProfile implements [APIClient]. Unset fields of update are omitted
// from the JSON body so the server-side merge leaves them untouched.
func (h *httpAPIClient) UpdateProfile(ctx context.Context, cred string, update models.UserUpdate) (models.User, error) {
	resp, err := h.authedRequest(ctx, cred).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode update profile response: %w", err)
	}

	return user, nil
}

// ListJobs implements [APIClient].
func (h *httpAPIClient) ListJobs(ctx context.Context, cred string) ([]models.Job, error) {
	resp, err := h.authedRequest(ctx, cred).Get("/jobs/")
	if err != nil {
		return nil, fmt.Errorf("list jobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err = json.Unmarshal(resp.Body(), &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs response: %w", err)
	}

	return jobs, nil
}

// GetJob implements [APIClient].
func (h *httpAPIClient) GetJob(ctx context.Context, cred string, id int64) (models.Job, error) {
	resp, err := h.authedRequest(ctx, cred).Get(fmt.Sprintf("/jobs/%d", id))
	if err != nil {
		return models.Job{}, fmt.Errorf("get job request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Job{}, err
	}

	var job models.Job
	if err = json.Unmarshal(resp.Body(), &job); err != nil {
		return models.Job{}, fmt.Errorf("decode job response: %w", err)
	}

	return job, nil
}

// ListRecommendations implements [APIClient].
func (h *httpAPIClient) ListRecommendations(ctx context.Context, cred string) ([]models.Recommendation, error) {
	resp, err := h.authedRequest(ctx, cred).Get("/recommendations/")
	if err != nil {
		return nil, fmt.Errorf("list recommendations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var recs []models.Recommendation
	if err = json.Unmarshal(resp.Body(), &recs); err != nil {
		return nil, fmt.Errorf("decode recommendations response: %w", err)
	}

	return recs, nil
}

// authedRequest builds a request carrying cred as the bearer credential. The
// credential travels as an argument on every call; the client itself holds no
// auth state.
func (h *httpAPIClient) authedRequest(ctx context.Context, cred string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cred != "" {
		req.SetHeader("Authorization", "Bearer "+cred)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
