package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
)

func submitTestApplication(t *testing.T, env *testEnv) *models.VolunteerApplication {
	t.Helper()
	env.seedUser(t, "vol-1", "Alice", models.RoleVolunteer)
	env.seedUser(t, "org-1", "Helping Hands", models.RoleOrganization)
	env.seedOpportunity(t, "opp-1", "org-1", "Beach Cleanup", 30)

	application, err := env.Applications.SubmitApplication(context.Background(),
		"opp-1", "vol-1", "Alice", "alice@example.com", "", "I love beaches")
	require.NoError(t, err)
	return application
}

func TestSubmitApplication(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)

	assert.Equal(t, models.ApplicationSubmitted, application.Status)
	assert.Equal(t, models.AttendancePending, application.Attendance)
	assert.Equal(t, "Beach Cleanup", application.OpportunityTitle)

	// applying earns the fixed apply award
	stats, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, ApplyPoints, stats.Points)
}

func TestSubmitApplicationRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	submitTestApplication(t, env)

	_, err := env.Applications.SubmitApplication(ctx, "opp-1", "vol-1", "Alice", "alice@example.com", "", "again")
	require.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestSubmitApplicationUnknownOpportunity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Applications.SubmitApplication(context.Background(), "missing", "vol-1", "Alice", "", "", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptApplicationEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)
	pointsBefore, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)

	result, err := env.Applications.AcceptApplication(ctx, application.ID, "org-1", "Helping Hands")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationAccepted, result.Application.Status)
	require.NotEmpty(t, result.ConversationID)

	// exactly one conversation seeded with one message from the organization
	conversations, err := env.Messaging.GetConversationsForUser(ctx, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, result.ConversationID, conversations[0].ID)
	require.Len(t, conversations[0].Messages, 1)
	assert.Equal(t, "org-1", conversations[0].Messages[0].SenderID)
	assert.Equal(t, 1, conversations[0].UnreadCount)

	// acceptance bonus awarded on top of the apply points
	statsAfter, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, pointsBefore.Points+AcceptanceBonus, statsAfter.Points)

	// one unread notification linking to the conversation
	notifications, err := env.Notifications.ListForUser(ctx, "vol-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
	assert.Equal(t, "/conversations/"+result.ConversationID, notifications[0].Link)
}

func TestAcceptApplicationRequiresOwningOrganization(t *testing.T) {
	env := newTestEnv(t)

	application := submitTestApplication(t, env)

	_, err := env.Applications.AcceptApplication(context.Background(), application.ID, "other-org", "Impostors Inc")
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestAcceptApplicationOnlyFromSubmitted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)
	_, err := env.Applications.AcceptApplication(ctx, application.ID, "org-1", "Helping Hands")
	require.NoError(t, err)

	_, err = env.Applications.AcceptApplication(ctx, application.ID, "org-1", "Helping Hands")
	require.Error(t, err)
}

func TestRejectApplication(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)
	statsBefore, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)

	rejected, err := env.Applications.RejectApplication(ctx, application.ID, "org-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, rejected.Status)

	// rejection notifies but never awards points
	statsAfter, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, statsBefore.Points, statsAfter.Points)

	notifications, err := env.Notifications.ListForUser(ctx, "vol-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "not selected")
}

func TestRecordPerformancePresentCompletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)
	_, err := env.Applications.AcceptApplication(ctx, application.ID, "org-1", "Helping Hands")
	require.NoError(t, err)

	updated, err := env.Applications.RecordPerformance(ctx, application.ID, "org-1", PerformanceInput{
		Attendance:       models.AttendancePresent,
		OrgRating:        5,
		HoursLoggedByOrg: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationCompleted, updated.Status)
	assert.Equal(t, models.AttendancePresent, updated.Attendance)
	assert.Equal(t, 5, updated.OrgRating)
	assert.Equal(t, 12.0, updated.HoursLoggedByOrg)

	// apply 5 + acceptance 10 + completion 30 + five-star bonus 20
	stats, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, ApplyPoints+AcceptanceBonus+30+FiveStarBonus, stats.Points)
	assert.Equal(t, 12.0, stats.Hours)

	// 12 hours crosses the first milestone
	assert.Contains(t, stats.Badges, "10 Hour Hero")
}

func TestRecordPerformanceFourStarBonus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)
	_, err := env.Applications.AcceptApplication(ctx, application.ID, "org-1", "Helping Hands")
	require.NoError(t, err)

	_, err = env.Applications.RecordPerformance(ctx, application.ID, "org-1", PerformanceInput{
		Attendance:       models.AttendancePresent,
		OrgRating:        4,
		HoursLoggedByOrg: 2,
	})
	require.NoError(t, err)

	stats, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, ApplyPoints+AcceptanceBonus+30+FourStarBonus, stats.Points)
}

func TestRecordPerformanceAbsentSkipsGamification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	application := submitTestApplication(t, env)
	_, err := env.Applications.AcceptApplication(ctx, application.ID, "org-1", "Helping Hands")
	require.NoError(t, err)
	statsBefore, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)

	updated, err := env.Applications.RecordPerformance(ctx, application.ID, "org-1", PerformanceInput{
		Attendance:       models.AttendanceAbsent,
		OrgRating:        2,
		HoursLoggedByOrg: 3,
	})
	require.NoError(t, err)

	// attendance recorded, status stays accepted, nothing awarded
	assert.Equal(t, models.ApplicationAccepted, updated.Status)
	assert.Equal(t, models.AttendanceAbsent, updated.Attendance)

	statsAfter, err := env.Gamification.GetUserStats(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, statsBefore.Points, statsAfter.Points)
	assert.Equal(t, statsBefore.Hours, statsAfter.Hours)
}

func TestRecordPerformanceRequiresAcceptedStatus(t *testing.T) {
	env := newTestEnv(t)

	application := submitTestApplication(t, env)

	_, err := env.Applications.RecordPerformance(context.Background(), application.ID, "org-1", PerformanceInput{
		Attendance: models.AttendancePresent,
	})
	require.Error(t, err)
}
