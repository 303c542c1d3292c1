package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/avolkov/jobscout/internal/adapter"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/models"
)

type profileService struct {
	adapter adapter.APIClient
	creds   CredentialSource
	logger  *logger.Logger
}

func NewProfileService(apiClient adapter.APIClient, creds CredentialSource, log *logger.Logger) ProfileService {
	return &profileService{adapter: apiClient, creds: creds, logger: log}
}

// FetchCurrent implements [ProfileService].
func (p *profileService) FetchCurrent(ctx context.Context) (models.User, error) {
	cred := p.creds.Credential()
	if cred == "" {
		return models.User{}, ErrNotAuthenticated
	}

	return p.adapter.CurrentUser(ctx, cred)
}

// Update implements [ProfileService]. The update value travels as-is: unset
// fields are omitted so the server-side merge leaves them unchanged. The
// returned user is the server's authoritative merged record.
func (p *profileService) Update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	cred := p.creds.Credential()
	if cred == "" {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := p.adapter.UpdateProfile(ctx, cred, update)
	if err != nil {
		p.logger.Debug().Err(err).
			Str("func", "profileService.Update").
			Msg("profile update rejected")
		return models.User{}, err
	}

	return user, nil
}

// ParseMinSalary coerces a raw form value into the numeric min_salary
// preference. Form inputs arrive as strings; anything that does not parse as
// a number silently becomes 0, it is never surfaced as a validation error.
func ParseMinSalary(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// AppendExperience builds a partial update that adds exp to the end of the
// user's work history. The user's own slice is copied, never mutated.
func AppendExperience(user models.User, exp models.Experience) models.UserUpdate {
	list := make([]models.Experience, 0, len(user.Experience)+1)
	list = append(list, user.Experience...)
	list = append(list, exp)
	return models.UserUpdate{Experience: &list}
}

// AppendEducation builds a partial update that adds edu to the end of the
// user's education history.
func AppendEducation(user models.User, edu models.Education) models.UserUpdate {
	list := make([]models.Education, 0, len(user.Education)+1)
	list = append(list, user.Education...)
	list = append(list, edu)
	return models.UserUpdate{Education: &list}
}

// RemoveHistoryEntry builds a partial update that drops one history entry.
// Indexes run over the experience entries first, then the education entries,
// matching how the profile screen lists them. An out-of-range index yields a
// zero update so callers can skip the round trip.
func RemoveHistoryEntry(user models.User, idx int) models.UserUpdate {
	if idx < 0 {
		return models.UserUpdate{}
	}

	if idx < len(user.Experience) {
		list := make([]models.Experience, 0, len(user.Experience)-1)
		list = append(list, user.Experience[:idx]...)
		list = append(list, user.Experience[idx+1:]...)
		return models.UserUpdate{Experience: &list}
	}

	idx -= len(user.Experience)
	if idx < len(user.Education) {
		list := make([]models.Education, 0, len(user.Education)-1)
		list = append(list, user.Education[:idx]...)
		list = append(list, user.Education[idx+1:]...)
		return models.UserUpdate{Education: &list}
	}

	return models.UserUpdate{}
}

// NormalizeSkills splits a comma-separated form value into a skill list,
// trimming whitespace, dropping empties and removing duplicates while
// preserving the first occurrence. Comparison is case-sensitive: "Go" and
// "go" are distinct skills.
func NormalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}

	return skills
}
