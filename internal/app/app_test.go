package app_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"trychooser/internal/app"
	"trychooser/internal/compile"
	"trychooser/internal/definition"
	"trychooser/internal/domain"
	"trychooser/internal/server"
)

const tryDefinition = "../../definitions/try.yaml"

func TestLocal_PersistsAcrossApps(t *testing.T) {
	ctx := context.Background()
	cfg := app.Config{
		Home:       t.TempDir(),
		Definition: tryDefinition,
		Logger:     zaptest.NewLogger(t),
	}

	a, err := app.New(cfg)
	require.NoError(t, err)
	snap, err := a.Apply(ctx, domain.Check("linux"), domain.Check("tp5o"))
	require.NoError(t, err)
	assert.Equal(t, "try: -b do -p linux -u none -t tp5o", snap.Result.Syntax)

	b, err := app.New(cfg)
	require.NoError(t, err)
	snap, err = b.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "try: -b do -p linux -u none -t tp5o", snap.Result.Syntax)

	snap, err = b.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, compile.NoJobsChosen, snap.Result.Syntax)

	controls, err := b.Controls(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, controls)
}

func TestLocal_RequiresDefinition(t *testing.T) {
	_, err := app.New(app.Config{Home: t.TempDir()})
	require.Error(t, err)
}

func newServer(t *testing.T) (*httptest.Server, *server.Server) {
	t.Helper()
	def, err := definition.Load(tryDefinition)
	require.NoError(t, err)
	s := server.New(def)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, s
}

func TestRemote_RemembersSession(t *testing.T) {
	ctx := context.Background()
	ts, s := newServer(t)
	cfg := app.Config{Home: t.TempDir(), ServerURL: ts.URL, HTTP: ts.Client()}

	a, err := app.New(cfg)
	require.NoError(t, err)
	first, err := a.Apply(ctx, domain.Check("win32"))
	require.NoError(t, err)
	require.NotEmpty(t, first.Session)

	b, err := app.New(cfg)
	require.NoError(t, err)
	again, err := b.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Session, again.Session)
	assert.Equal(t, "try: -b do -p win32 -u none -t none", again.Result.Syntax)
	assert.Equal(t, 1, s.Registry().Len())

	_, fp, err := b.Definition(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, fp)
}

func TestRemote_ReplacesVanishedSession(t *testing.T) {
	ctx := context.Background()
	ts, s := newServer(t)
	cfg := app.Config{Home: t.TempDir(), ServerURL: ts.URL, HTTP: ts.Client()}

	a, err := app.New(cfg)
	require.NoError(t, err)
	first, err := a.Snapshot(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Registry().Delete(first.Session))

	b, err := app.New(cfg)
	require.NoError(t, err)
	snap, err := b.Apply(ctx, domain.Check("linux"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Session, snap.Session)
	assert.Equal(t, "try: -b do -p linux -u none -t none", snap.Result.Syntax)
}

func TestRemote_ExplicitSessionIsNotReplaced(t *testing.T) {
	ts, _ := newServer(t)
	a, err := app.New(app.Config{
		Home:      t.TempDir(),
		ServerURL: ts.URL,
		Session:   "does-not-exist",
		HTTP:      ts.Client(),
	})
	require.NoError(t, err)

	_, err = a.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}
