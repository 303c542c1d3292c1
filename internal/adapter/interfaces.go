// Package adapter provides the transport layer for communicating with the
// job-search backend.
//
// The primary abstraction is [APIClient], which decouples the service layer
// from the wire protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPAPIClient]) built on resty.
//
// Authentication is deliberately explicit: there is no process-wide default
// Authorization header. Every authenticated call takes the bearer credential
// as a parameter, and the session service is the only component that produces
// that value. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/avolkov/jobscout/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines transport-agnostic communication with the job-search
// backend. Implementations are responsible for serialisation, attaching the
// supplied bearer credential, and mapping transport-level errors to the
// sentinel values defined in this package.
type APIClient interface {
	// ExchangeToken trades a username/password pair for a bearer token via
	// the token endpoint. Credentials are sent as form-encoded fields, not
	// JSON. Returns [ErrUnauthorized] (wrapped) for invalid credentials.
	ExchangeToken(ctx context.Context, username, password string) (models.Token, error)

	// CreateUser registers a new account. The created user returned by the
	// server is passed through but callers typically discard it and perform
	// a regular login instead.
	CreateUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// CurrentUser fetches the profile of the user the credential belongs to.
	CurrentUser(ctx context.Context, cred string) (models.User, error)

	// UpdateProfile sends a partial profile update. Only fields set on
	// update are transmitted; the server performs the merge and the full
	// merged user is returned.
	UpdateProfile(ctx context.Context, cred string, update models.UserUpdate) (models.User, error)

	// ListJobs fetches the full job catalog in server order.
	ListJobs(ctx context.Context, cred string) ([]models.Job, error)

	// GetJob fetches a single posting. Returns [ErrNotFound] (wrapped) when
	// the id is unknown to the server.
	GetJob(ctx context.Context, cred string, id int64) (models.Job, error)

	// ListRecommendations fetches the recommendation records for the
	// credential's user, in the server's ranking order.
	ListRecommendations(ctx context.Context, cred string) ([]models.Recommendation, error)
}
