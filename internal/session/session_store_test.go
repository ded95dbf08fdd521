package session_test

import (
	"context"
	"testing"
	"time"

	"paydesk/internal/session"

	sessionerrors "paydesk/internal/session/errors"

	"github.com/stretchr/testify/assert"
)

func TestStore_CreateGetDelete(t *testing.T) {
	store := session.NewStore(time.Hour)

	sess := store.Create()
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	store.Delete(sess.ID)
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, sessionerrors.ErrSessionNotFound)
}

func TestStore_SweeperEvictsIdleSessions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := session.NewStore(20 * time.Millisecond)
	idle := store.Create()
	store.StartSweeper(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, err := store.Get(idle.ID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}
