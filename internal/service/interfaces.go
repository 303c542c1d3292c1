// Package service contains the client's business layer: the session manager
// owning the authentication lifecycle, the profile repository with its
// form-input normalization, the catalog client with pure predicate filtering,
// the recommendation aggregator, and the background catalog refresh job.
package service

import (
	"context"
	"time"

	"github.com/avolkov/jobscout/models"
)

// SessionState enumerates the session manager's lifecycle states.
type SessionState int

const (
	// StateInitializing is the state before Restore has completed.
	StateInitializing SessionState = iota
	// StateUnauthenticated means no validated credential is held.
	StateUnauthenticated
	// StateAuthenticated means a validated credential and user are held.
	StateAuthenticated
)

// CredentialSource yields the bearer credential of the active session.
// The session service is the only implementation; data services receive it by
// injection so that no component ever mutates a process-wide default header.
type CredentialSource interface {
	// Credential returns the current bearer token, or an empty string when
	// the session is not authenticated.
	Credential() string
}

// SessionService owns the authenticated/unauthenticated state machine. All
// accessors are safe for concurrent use; the side effects of a single call
// (storage write, credential update, user update) are applied atomically from
// the caller's perspective.
type SessionService interface {
	CredentialSource

	// Restore loads the persisted credential at startup and validates it by
	// fetching the current user. Any failure results in the stored token
	// being deleted and the session ending up unauthenticated; restore
	// failures are silent and never propagate. The loading flag is true
	// for the duration of the call.
	Restore(ctx context.Context)

	// Login exchanges credentials for a bearer token, persists it, and
	// fetches the current user. A token-exchange failure leaves no partial
	// state. A user-fetch failure after a successful exchange propagates
	// with the persisted token left in place.
	Login(ctx context.Context, username, password string) error

	// Register creates an account and then performs Login with the same
	// credentials. Either failure propagates as-is.
	Register(ctx context.Context, username, email, password string) error

	// Logout deletes the stored token and clears the credential and the
	// current user. It cannot fail; storage errors are logged and ignored.
	Logout(ctx context.Context)

	// UpdateProfile sends a partial profile update and replaces the current
	// user with the server's authoritative response.
	UpdateProfile(ctx context.Context, update models.UserUpdate) error

	// CurrentUser returns the authenticated user, if any.
	CurrentUser() (models.User, bool)

	// IsAuthenticated reports whether a user is held. It is purely derived
	// from CurrentUser.
	IsAuthenticated() bool

	// Loading reports whether Restore is in flight.
	Loading() bool

	// State returns the current lifecycle state.
	State() SessionState
}

// ProfileService reads and mutates the authenticated user's profile. It has
// no auth logic of its own; the bearer credential comes from the injected
// [CredentialSource].
type ProfileService interface {
	// FetchCurrent returns the authenticated user's profile.
	FetchCurrent(ctx context.Context) (models.User, error)

	// Update sends only the fields set on update; the server performs the
	// merge and the returned User replaces all local state.
	Update(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// CatalogService reads the job catalog. Successful listings refresh the
// local cache; transport failures fall back to it.
type CatalogService interface {
	// List returns the full ordered job catalog.
	List(ctx context.Context) ([]models.Job, error)

	// ByID returns a single posting or a not-found error.
	ByID(ctx context.Context, id int64) (models.Job, error)
}

// RecommendationService joins recommendation records with the job catalog
// into presentation-ready view-models.
type RecommendationService interface {
	// Fetch retrieves the recommendation list and the job catalog and pairs
	// them, preserving the recommendation order and dropping records whose
	// job is absent from the catalog.
	Fetch(ctx context.Context) ([]models.RecommendedJob, error)
}

// CatalogRefreshJob periodically re-fetches the job catalog in the
// background so the local cache stays warm while the client runs.
type CatalogRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
