package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
)

func seedConversation(t *testing.T, env *testEnv) *models.Conversation {
	t.Helper()
	conversation, err := env.Messaging.CreateConversation(context.Background(), CreateConversationInput{
		OrganizationID:   "org-1",
		VolunteerID:      "vol-1",
		OpportunityID:    "opp-1",
		OpportunityTitle: "Beach Cleanup",
		OrganizationName: "Helping Hands",
		VolunteerName:    "Alice",
		InitialMessage:   "Welcome aboard!",
	})
	require.NoError(t, err)
	return conversation
}

func TestCreateConversationSeedsInitialMessage(t *testing.T) {
	env := newTestEnv(t)

	conversation := seedConversation(t, env)

	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, "org-1", conversation.Messages[0].SenderID)
	assert.Equal(t, "Welcome aboard!", conversation.Messages[0].Text)
	assert.False(t, conversation.Messages[0].Read)
	require.NotNil(t, conversation.LastMessage)
	assert.Equal(t, conversation.Messages[0].ID, conversation.LastMessage.ID)
}

func TestCreateConversationDedupDiscardsNewMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := seedConversation(t, env)

	second, err := env.Messaging.CreateConversation(ctx, CreateConversationInput{
		OrganizationID: "org-1",
		VolunteerID:    "vol-1",
		OpportunityID:  "opp-1",
		InitialMessage: "This text must be discarded",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, second.Messages, 1)
	assert.Equal(t, "Welcome aboard!", second.Messages[0].Text)
}

func TestUnreadCountsArePerViewer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conversation := seedConversation(t, env)

	// volunteer reads the welcome message, then both sides write one more
	_, _, err := env.Messaging.GetConversationDetails(ctx, conversation.ID, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)
	_, err = env.Messaging.SendMessage(ctx, conversation.ID, "vol-1", "Thanks, excited to help!")
	require.NoError(t, err)
	_, err = env.Messaging.SendMessage(ctx, conversation.ID, "org-1", "See you Saturday")
	require.NoError(t, err)

	volunteerView, err := env.Messaging.GetConversationsForUser(ctx, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, volunteerView, 1)
	assert.Equal(t, 1, volunteerView[0].UnreadCount)

	orgView, err := env.Messaging.GetConversationsForUser(ctx, "org-1", models.RoleOrganization)
	require.NoError(t, err)
	require.Len(t, orgView, 1)
	assert.Equal(t, 1, orgView[0].UnreadCount)
}

func TestGetConversationDetailsFlipsOnlyOtherSendersMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conversation := seedConversation(t, env)
	_, err := env.Messaging.SendMessage(ctx, conversation.ID, "vol-1", "Looking forward to it")
	require.NoError(t, err)

	_, messages, err := env.Messaging.GetConversationDetails(ctx, conversation.ID, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	for _, message := range messages {
		if message.SenderID == "vol-1" {
			assert.False(t, message.Read, "viewer's own message must stay unread")
		} else {
			assert.True(t, message.Read, "other sender's message must be flipped")
		}
	}

	// flips are persisted
	view, err := env.Messaging.GetConversationsForUser(ctx, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, 0, view[0].UnreadCount)
}

func TestGetConversationDetailsDeniesNonParticipant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conversation := seedConversation(t, env)

	_, _, err := env.Messaging.GetConversationDetails(ctx, conversation.ID, "someone-else", models.RoleVolunteer)
	require.ErrorIs(t, err, ErrAccessDenied)

	// denial must not mutate anything
	view, err := env.Messaging.GetConversationsForUser(ctx, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].UnreadCount)
}

func TestSendMessageErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conversation := seedConversation(t, env)

	_, err := env.Messaging.SendMessage(ctx, "missing-conversation", "vol-1", "hello")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = env.Messaging.SendMessage(ctx, conversation.ID, "stranger", "hello")
	require.ErrorIs(t, err, ErrAccessDenied)

	// empty text is a silent no-op, not an error
	message, err := env.Messaging.SendMessage(ctx, conversation.ID, "vol-1", "   ")
	require.NoError(t, err)
	assert.Nil(t, message)
}

func TestSendMessageNotifiesRecipient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conversation := seedConversation(t, env)
	_, err := env.Messaging.SendMessage(ctx, conversation.ID, "org-1", "Quick update")
	require.NoError(t, err)

	notifications, err := env.Notifications.ListForUser(ctx, "vol-1")
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	assert.Contains(t, notifications[0].Message, "Beach Cleanup")
	assert.Equal(t, "/conversations/"+conversation.ID, notifications[0].Link)
}

func TestConversationsSortedByLastActivity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := seedConversation(t, env)

	second, err := env.Messaging.CreateConversation(ctx, CreateConversationInput{
		OrganizationID: "org-1",
		VolunteerID:    "vol-1",
		OpportunityID:  "opp-2",
		InitialMessage: "Another opportunity",
	})
	require.NoError(t, err)

	// bump the older conversation with a fresh message
	_, err = env.Messaging.SendMessage(ctx, first.ID, "org-1", "Ping")
	require.NoError(t, err)

	view, err := env.Messaging.GetConversationsForUser(ctx, "vol-1", models.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, view, 2)
	assert.Equal(t, first.ID, view[0].ID)
	assert.Equal(t, second.ID, view[1].ID)
}
