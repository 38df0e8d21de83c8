package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.Notifications.Create(ctx, "vol-1", "Your application was accepted!", "/conversations/c1")
	require.NoError(t, err)
	assert.False(t, created.Read)

	notifications, err := env.Notifications.ListForUser(ctx, "vol-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	marked, err := env.Notifications.MarkRead(ctx, created.ID, "vol-1")
	require.NoError(t, err)
	require.NotNil(t, marked)
	assert.True(t, marked.Read)
}

func TestMarkReadEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.Notifications.Create(ctx, "vol-1", "hello", "")
	require.NoError(t, err)

	// foreign or missing notifications return nil rather than an error
	marked, err := env.Notifications.MarkRead(ctx, created.ID, "someone-else")
	require.NoError(t, err)
	assert.Nil(t, marked)

	marked, err = env.Notifications.MarkRead(ctx, "missing-id", "vol-1")
	require.NoError(t, err)
	assert.Nil(t, marked)

	// the original notification is untouched
	notifications, err := env.Notifications.ListForUser(ctx, "vol-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
}

func TestMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, message := range []string{"one", "two", "three"} {
		_, err := env.Notifications.Create(ctx, "vol-1", message, "")
		require.NoError(t, err)
	}
	_, err := env.Notifications.Create(ctx, "vol-2", "other user", "")
	require.NoError(t, err)

	count, err := env.Notifications.MarkAllRead(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// second run has nothing left to flip
	count, err = env.Notifications.MarkAllRead(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	others, err := env.Notifications.ListForUser(ctx, "vol-2")
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.False(t, others[0].Read)
}
