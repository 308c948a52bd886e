package remote_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trychooser/internal/domain"
	"trychooser/internal/services/remote"
)

type fakeClient struct {
	created int
	applied []domain.Event
	resets  int
}

func (f *fakeClient) Definition(context.Context) (domain.Definition, domain.Fingerprint, error) {
	return domain.Definition{}, "fp", nil
}

func (f *fakeClient) CreateSession(context.Context) (domain.Snapshot, error) {
	f.created++
	return domain.Snapshot{Session: "s1"}, nil
}

func (f *fakeClient) Session(_ context.Context, id domain.SessionID) (domain.Snapshot, error) {
	return domain.Snapshot{Session: id}, nil
}

func (f *fakeClient) ApplyEvents(_ context.Context, id domain.SessionID, events []domain.Event) (domain.Snapshot, error) {
	f.applied = append(f.applied, events...)
	return domain.Snapshot{Session: id}, nil
}

func (f *fakeClient) ResetSession(_ context.Context, id domain.SessionID) (domain.Snapshot, error) {
	f.resets++
	return domain.Snapshot{Session: id}, nil
}

func (f *fakeClient) DeleteSession(context.Context, domain.SessionID) error { return nil }

func TestService_CreatesSessionOnFirstUse(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := remote.New(client, "")

	snap, err := svc.Apply(ctx, domain.Check("linux"))
	require.NoError(t, err)
	assert.Equal(t, domain.SessionID("s1"), snap.Session)
	assert.Equal(t, domain.SessionID("s1"), svc.ID())
	assert.Equal(t, 1, client.created)

	_, err = svc.Apply(ctx, domain.Check("win32"))
	require.NoError(t, err)
	assert.Equal(t, 1, client.created, "session is reused")
	assert.Len(t, client.applied, 2)
}

func TestService_ExistingSession(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := remote.New(client, "abc")

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionID("abc"), snap.Session)

	_, err = svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, client.resets)
	assert.Zero(t, client.created)
}
