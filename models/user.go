package models

// Preference keys recognized by the client. The preferences mapping is open:
// the backend stores whatever keys it is sent, the client only interprets
// these two.
const (
	PrefRemote    = "remote"
	PrefMinSalary = "min_salary"
)

// User is the account record returned by GET /users/me. Identity fields are
// immutable from the client's perspective; profile fields are mutated only
// through [UserUpdate] and the server's response is authoritative.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// FullName is the optional display name.
	FullName string `json:"full_name,omitempty"`

	// Skills is an order-preserving list of skill names. Uniqueness is
	// enforced case-sensitively at the edit layer, not here.
	Skills []string `json:"skills"`

	// Experience is the ordered work history.
	Experience []Experience `json:"experience"`

	// Education is the ordered education history.
	Education []Education `json:"education"`

	// Preferences is an open mapping of preference name to scalar value.
	// JSON numbers decode as float64, booleans as bool.
	Preferences map[string]any `json:"preferences"`
}

// Experience is a single work-history entry.
type Experience struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}

// Education is a single education-history entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   int    `json:"year"`
}

// RemotePreferred reports whether the user prefers remote positions.
// Missing or non-boolean values count as false.
func (u User) RemotePreferred() bool {
	v, ok := u.Preferences[PrefRemote].(bool)
	return ok && v
}

// MinSalary returns the user's minimum salary preference, or 0 when the
// preference is missing or not numeric.
func (u User) MinSalary() float64 {
	v, ok := u.Preferences[PrefMinSalary].(float64)
	if !ok {
		return 0
	}
	return v
}

// UserUpdate is the partial-update payload for PUT /users/me. Every field is
// optional; fields left nil are omitted from the request body and remain
// unchanged on the server. Callers must never reconstruct a full User with
// defaults here, only the fields that actually changed go in.
type UserUpdate struct {
	FullName    *string        `json:"full_name,omitempty"`
	Skills      *[]string      `json:"skills,omitempty"`
	Experience  *[]Experience  `json:"experience,omitempty"`
	Education   *[]Education   `json:"education,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// IsZero reports whether the update carries no fields at all.
func (u UserUpdate) IsZero() bool {
	return u.FullName == nil &&
		u.Skills == nil &&
		u.Experience == nil &&
		u.Education == nil &&
		u.Preferences == nil
}

// RegisterRequest is the JSON body of POST /users/.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
