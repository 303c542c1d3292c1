package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/mock"
	"github.com/avolkov/jobscout/models"
)

type staticCred string

func (c staticCred) Credential() string { return string(c) }

func TestProfileService_FetchCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	p := NewProfileService(api, staticCred("tok"), logger.Nop())
	ctx := context.Background()

	want := models.User{ID: 3, Username: "ada", Skills: []string{"Go", "SQL"}}
	api.EXPECT().CurrentUser(ctx, "tok").Return(want, nil)

	got, err := p.FetchCurrent(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_FetchCurrent_NoCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	p := NewProfileService(api, staticCred(""), logger.Nop())

	_, err := p.FetchCurrent(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestProfileService_Update_PassesUpdateThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	p := NewProfileService(api, staticCred("tok"), logger.Nop())
	ctx := context.Background()

	skills := []string{"Go", "Python"}
	update := models.UserUpdate{Skills: &skills}
	merged := models.User{ID: 3, FullName: "Ada", Skills: skills}
	api.EXPECT().UpdateProfile(ctx, "tok", update).Return(merged, nil)

	got, err := p.Update(ctx, update)

	require.NoError(t, err)
	// Untouched fields come back from the server merge, not from the update.
	assert.Equal(t, "Ada", got.FullName)
	assert.Equal(t, skills, got.Skills)
}

func TestProfileService_Update_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	p := NewProfileService(api, staticCred("tok"), logger.Nop())
	ctx := context.Background()

	api.EXPECT().UpdateProfile(ctx, "tok", gomock.Any()).
		Return(models.User{}, errors.New("422 validation"))

	_, err := p.Update(ctx, models.UserUpdate{})

	assert.Error(t, err)
}

func TestAppendExperience(t *testing.T) {
	user := models.User{Experience: []models.Experience{
		{Company: "Acme", Role: "Engineer", Duration: "2 years"},
	}}

	update := AppendExperience(user, models.Experience{Company: "Globex", Role: "Senior Engineer", Duration: "1 year"})

	require.NotNil(t, update.Experience)
	require.Len(t, *update.Experience, 2)
	assert.Equal(t, "Acme", (*update.Experience)[0].Company)
	assert.Equal(t, "Globex", (*update.Experience)[1].Company)
	// Only the experience field travels.
	assert.Nil(t, update.FullName)
	assert.Nil(t, update.Skills)
	assert.Nil(t, update.Education)
	assert.Nil(t, update.Preferences)
	// The user's own history is untouched.
	assert.Len(t, user.Experience, 1)
}

func TestAppendEducation(t *testing.T) {
	user := models.User{}

	update := AppendEducation(user, models.Education{School: "EFREI", Degree: "MSc", Year: 2024})

	require.NotNil(t, update.Education)
	require.Len(t, *update.Education, 1)
	assert.Equal(t, 2024, (*update.Education)[0].Year)
	assert.Nil(t, update.Experience)
}

func TestRemoveHistoryEntry(t *testing.T) {
	user := models.User{
		Experience: []models.Experience{
			{Company: "Acme", Role: "Engineer"},
			{Company: "Globex", Role: "Analyst"},
		},
		Education: []models.Education{
			{School: "EFREI", Degree: "MSc", Year: 2024},
		},
	}

	t.Run("experience entry", func(t *testing.T) {
		update := RemoveHistoryEntry(user, 0)

		require.NotNil(t, update.Experience)
		require.Len(t, *update.Experience, 1)
		assert.Equal(t, "Globex", (*update.Experience)[0].Company)
		assert.Nil(t, update.Education)
	})

	t.Run("education entry after experience", func(t *testing.T) {
		update := RemoveHistoryEntry(user, 2)

		require.NotNil(t, update.Education)
		assert.Empty(t, *update.Education)
		assert.Nil(t, update.Experience)
	})

	t.Run("out of range", func(t *testing.T) {
		assert.True(t, RemoveHistoryEntry(user, 3).IsZero())
		assert.True(t, RemoveHistoryEntry(user, -1).IsZero())
	})

	t.Run("input not mutated", func(t *testing.T) {
		_ = RemoveHistoryEntry(user, 1)
		assert.Len(t, user.Experience, 2)
		assert.Equal(t, "Globex", user.Experience[1].Company)
	})
}

func TestParseMinSalary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain number", raw: "85000", want: 85000},
		{name: "decimal", raw: "85000.50", want: 85000.50},
		{name: "padded", raw: "  90000 ", want: 90000},
		{name: "empty", raw: "", want: 0},
		{name: "not a number", raw: "lots", want: 0},
		{name: "negative", raw: "-100", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMinSalary(tt.raw))
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "trims and splits",
			raw:  " Go , SQL,Docker ",
			want: []string{"Go", "SQL", "Docker"},
		},
		{
			name: "drops duplicates keeping first",
			raw:  "Go,SQL,Go",
			want: []string{"Go", "SQL"},
		},
		{
			name: "case sensitive",
			raw:  "Go,go",
			want: []string{"Go", "go"},
		},
		{
			name: "drops empties",
			raw:  "Go,,  ,SQL",
			want: []string{"Go", "SQL"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkills(tt.raw))
		})
	}
}
