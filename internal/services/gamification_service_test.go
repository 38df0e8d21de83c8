package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
)

func TestGetUserStatsZeroState(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.Gamification.GetUserStats(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Points)
	assert.Equal(t, 0.0, stats.Hours)
	assert.Empty(t, stats.Badges)
}

func TestAddPointsAccumulates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Gamification.AddPoints(ctx, "vol-1", 10, "x")
	require.NoError(t, err)
	stats, err := env.Gamification.AddPoints(ctx, "vol-1", 10, "x")
	require.NoError(t, err)

	// points are deliberately not idempotent: same reason counts twice
	assert.Equal(t, 20, stats.Points)

	log := env.gamificationLog(t)
	require.Len(t, log, 2)
	assert.Equal(t, models.LogEntryPoints, log[0].Type)
	assert.Equal(t, models.LogEntryPoints, log[1].Type)
}

func TestNonPositiveAmountsAreNoOps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Gamification.AddPoints(ctx, "vol-1", 7, "seed")
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() (models.VolunteerStats, error)
	}{
		{"zero points", func() (models.VolunteerStats, error) {
			return env.Gamification.AddPoints(ctx, "vol-1", 0, "x")
		}},
		{"negative points", func() (models.VolunteerStats, error) {
			return env.Gamification.AddPoints(ctx, "vol-1", -3, "x")
		}},
		{"zero hours", func() (models.VolunteerStats, error) {
			return env.Gamification.LogHours(ctx, "vol-1", 0, "x")
		}},
		{"negative hours", func() (models.VolunteerStats, error) {
			return env.Gamification.LogHours(ctx, "vol-1", -5, "x")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := tc.call()
			require.NoError(t, err)
			assert.Equal(t, 7, stats.Points)
			assert.Equal(t, 0.0, stats.Hours)
		})
	}

	assert.Len(t, env.gamificationLog(t), 1)
}

func TestAwardBadgeIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Gamification.AwardBadge(ctx, "vol-1", "Early Bird", "first")
	require.NoError(t, err)
	stats, err := env.Gamification.AwardBadge(ctx, "vol-1", "Early Bird", "second")
	require.NoError(t, err)

	assert.Equal(t, []string{"Early Bird"}, stats.Badges)

	log := env.gamificationLog(t)
	require.Len(t, log, 1)
	assert.Equal(t, models.LogEntryBadge, log[0].Type)
	assert.Equal(t, "Early Bird", log[0].Value)
}

func TestLogHoursMilestoneCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stats, err := env.Gamification.LogHours(ctx, "vol-1", 60, "event")
	require.NoError(t, err)

	assert.Equal(t, 60.0, stats.Hours)
	assert.Equal(t, []string{"10 Hour Hero", "50 Hour Superstar"}, stats.Badges)

	log := env.gamificationLog(t)
	require.Len(t, log, 3)
	assert.Equal(t, models.LogEntryHours, log[0].Type)
	assert.Equal(t, models.LogEntryBadge, log[1].Type)
	assert.Equal(t, "10 Hour Hero", log[1].Value)
	assert.Equal(t, models.LogEntryBadge, log[2].Type)
	assert.Equal(t, "50 Hour Superstar", log[2].Value)
}

func TestLogHoursDoesNotReawardMilestones(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Gamification.LogHours(ctx, "vol-1", 12, "first")
	require.NoError(t, err)
	stats, err := env.Gamification.LogHours(ctx, "vol-1", 2, "second")
	require.NoError(t, err)

	assert.Equal(t, []string{"10 Hour Hero"}, stats.Badges)
}

func TestLeaderboardRanksVolunteersOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedUser(t, "vol-a", "Alice", models.RoleVolunteer)
	env.seedUser(t, "vol-b", "Bob", models.RoleVolunteer)
	env.seedUser(t, "vol-c", "Carol", models.RoleVolunteer)
	env.seedUser(t, "org-1", "Helping Hands", models.RoleOrganization)

	for _, award := range []struct {
		userID string
		points int
	}{
		{"vol-a", 50},
		{"vol-b", 20},
		{"vol-c", 80},
		{"org-1", 999},
	} {
		_, err := env.Gamification.AddPoints(ctx, award.userID, award.points, "seed")
		require.NoError(t, err)
	}

	leaderboard, err := env.Gamification.GetLeaderboard(ctx, 2)
	require.NoError(t, err)

	require.Len(t, leaderboard, 2)
	assert.Equal(t, "vol-c", leaderboard[0].UserID)
	assert.Equal(t, 80, leaderboard[0].Points)
	assert.Equal(t, "Carol", leaderboard[0].UserName)
	assert.Equal(t, "vol-a", leaderboard[1].UserID)
	assert.Equal(t, 50, leaderboard[1].Points)
}

func TestStatsSurviveReload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Gamification.AddPoints(ctx, "vol-1", 15, "seed")
	require.NoError(t, err)
	_, err = env.Gamification.LogHours(ctx, "vol-1", 3, "seed")
	require.NoError(t, err)

	stats, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, 15, stats.Points)
	assert.Equal(t, 3.0, stats.Hours)
}
