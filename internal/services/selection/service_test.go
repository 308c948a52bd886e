package selection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"trychooser/internal/compile"
	"trychooser/internal/definition"
	"trychooser/internal/domain"
	"trychooser/internal/services/selection"
	"trychooser/internal/store"
)

func newService(t *testing.T, home string) *selection.Service {
	t.Helper()
	def, err := definition.Load("../../../definitions/try.yaml")
	require.NoError(t, err)
	return selection.New(def, store.NewStateFileStore(home), zaptest.NewLogger(t))
}

func TestService_StatePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	first := newService(t, home)
	snap, err := first.Apply(ctx, domain.Check("linux"))
	require.NoError(t, err)
	assert.Equal(t, "try: -b do -p linux -u none -t none", snap.Result.Syntax)

	second := newService(t, home)
	snap, err = second.Apply(ctx, domain.Check("mochitests"))
	require.NoError(t, err)
	assert.Equal(t, "try: -b do -p linux -u mochitests -t none", snap.Result.Syntax)

	snap, err = second.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.State.IsChecked("linux"))
}

func TestService_FailedApplyIsNotSaved(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir())

	_, err := svc.Apply(ctx, domain.Check("linux"), domain.Select("b", "nope"))
	require.ErrorIs(t, err, domain.ErrUnknownChoice)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, compile.NoJobsChosen, snap.Result.Syntax)
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	svc := newService(t, home)

	_, err := svc.Apply(ctx, domain.Check("linux"))
	require.NoError(t, err)

	snap, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Result.NoneChosen)

	snap, err = newService(t, home).Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Result.NoneChosen)
}

func TestService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(t, t.TempDir()).Apply(ctx, domain.Check("linux"))
	assert.ErrorIs(t, err, context.Canceled)
}
