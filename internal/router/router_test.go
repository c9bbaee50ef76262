package router_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/app"
	"github.com/gymkit/dashboard/internal/config"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/internal/testutil"
)

func writeSessionFile(t *testing.T, path, token string, role domain.Role, user domain.Identity) {
	t.Helper()
	rawUser, err := json.Marshal(user)
	require.NoError(t, err)
	payload := map[string]string{
		"token": token,
		"user":  string(rawUser),
		"role":  string(role),
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func newTestApp(t *testing.T, api *testutil.GymAPI, sessionFile string) *app.App {
	t.Helper()
	cfg := &config.Config{
		API:     config.APIConfig{BaseURL: api.URL(), TimeoutSeconds: 5},
		Session: config.SessionConfig{FilePath: sessionFile},
		Logger:  config.LoggerConfig{Level: "error"},
	}
	core := app.New(cfg, zap.NewNop())
	t.Cleanup(core.Close)
	return core
}

func newAdminApp(t *testing.T, api *testutil.GymAPI) *app.App {
	t.Helper()
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	writeSessionFile(t, sessionFile, api.Token(), domain.RoleAdmin,
		domain.Identity{ID: "a1", Username: "root", Name: "Root"})
	core := newTestApp(t, api, sessionFile)
	_, ok := core.Start(context.Background())
	require.True(t, ok, "admin session must restore")
	return core
}

func activeMarkers(core *app.App) (domain.PageID, domain.PageID) {
	return core.Router.ActivePage(), core.Router.ActiveNav()
}

func TestNavigate_SingleActiveInvariant(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	core := newAdminApp(t, api)
	ctx := context.Background()

	steps := []struct {
		target     domain.PageID
		ok         bool
		wantActive domain.PageID
	}{
		{domain.PageMembers, true, domain.PageMembers},
		{domain.PageMembers, true, domain.PageMembers},                // repeat
		{domain.PageID("bogus"), false, domain.PageMembers},           // unknown target
		{domain.PageTrainers, true, domain.PageTrainers},
		{domain.PagePayment, false, domain.PageTrainers},              // admin has no payment page
		{domain.PageEquipment, true, domain.PageEquipment},
		{domain.PageDashboard, true, domain.PageDashboard},
	}

	for _, step := range steps {
		page, ok := core.Navigate(ctx, step.target)
		assert.Equal(t, step.ok, ok, "target %s", step.target)
		if ok {
			require.NotNil(t, page)
			assert.Equal(t, step.target, page.ID)
		} else {
			assert.Nil(t, page)
		}

		activePage, activeNav := activeMarkers(core)
		assert.Equal(t, step.wantActive, activePage)
		assert.Equal(t, step.wantActive, activeNav, "page and nav markers always agree")
	}
}

func TestNavigate_LoggedOutIsNoOp(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	core := newTestApp(t, api, filepath.Join(t.TempDir(), "session.json"))

	page, ok := core.Navigate(context.Background(), domain.PageDashboard)
	assert.False(t, ok)
	assert.Nil(t, page)

	activePage, activeNav := activeMarkers(core)
	assert.Empty(t, activePage)
	assert.Empty(t, activeNav)
}

func TestNavigate_RoleGating(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	writeSessionFile(t, sessionFile, api.Token(), domain.RoleMember,
		domain.Identity{ID: "m1", Username: "ana", JoinDate: time.Now().AddDate(0, -2, 0)})
	core := newTestApp(t, api, sessionFile)
	_, ok := core.Start(context.Background())
	require.True(t, ok)

	ctx := context.Background()

	// member pages work without touching the admin collections
	page, ok := core.Navigate(ctx, domain.PagePayment)
	require.True(t, ok)
	assert.NotNil(t, page.Payment)
	assert.Zero(t, api.CountRequests("GET /members"))

	// admin-only pages are silently ignored
	page, ok = core.Navigate(ctx, domain.PageMembers)
	assert.False(t, ok)
	assert.Nil(t, page)
	activePage, _ := activeMarkers(core)
	assert.Equal(t, domain.PagePayment, activePage)
}

func TestNavigate_AuthFailureForcesLogout(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	core := newAdminApp(t, api)
	ctx := context.Background()

	api.FailAuth = true

	page, ok := core.Navigate(ctx, domain.PageMembers)
	assert.False(t, ok)
	assert.Nil(t, page)

	// the 401 during the cache refresh tore the session down
	_, logged := core.Sessions.Current()
	assert.False(t, logged)
	activePage, activeNav := activeMarkers(core)
	assert.Empty(t, activePage)
	assert.Empty(t, activeNav)
	assert.False(t, core.Frame().LoggedIn)
}

func TestNavigate_StaleFetchDiscarded(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	core := newAdminApp(t, api)
	ctx := context.Background()

	before := api.CountRequests("GET /members")
	api.Blocker = make(chan struct{})

	done := make(chan bool, 1)
	go func() {
		_, ok := core.Navigate(ctx, domain.PageMembers)
		done <- ok
	}()

	// wait until the members fetch is held in flight
	require.Eventually(t, func() bool {
		return api.CountRequests("GET /members") > before
	}, 2*time.Second, 5*time.Millisecond)

	// a newer navigation completes while the old fetch is still pending
	page, ok := core.Navigate(ctx, domain.PageEquipment)
	require.True(t, ok)
	require.NotNil(t, page.Equipment)

	close(api.Blocker)

	// the superseded navigation must not overwrite the newer render
	assert.False(t, <-done)
	activePage, activeNav := activeMarkers(core)
	assert.Equal(t, domain.PageEquipment, activePage)
	assert.Equal(t, domain.PageEquipment, activeNav)
}
