package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/api/dto"
	"github.com/gymkit/dashboard/internal/clients"
	"github.com/gymkit/dashboard/internal/config"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/internal/events"
	"github.com/gymkit/dashboard/internal/observability"
	"github.com/gymkit/dashboard/internal/testutil"
)

func newTestCache(t *testing.T, api *testutil.GymAPI) (*Cache, events.Dispatcher) {
	t.Helper()
	dispatcher := events.NewInMemoryDispatcher()
	cfg := config.APIConfig{BaseURL: api.URL(), TimeoutSeconds: 5}
	client := clients.NewGymClient(cfg, zap.NewNop(), observability.NewMetrics(), dispatcher)
	client.SetTokenSource(api.Token)
	return New(client, dispatcher, zap.NewNop()), dispatcher
}

func seedCollections(api *testutil.GymAPI) {
	api.Members = []dto.MemberPayload{
		{ID: "m1", Name: "Ana", Plan: "basic", PaymentStatus: "Paid", TrainerID: "t1", Status: "active"},
		{ID: "m2", Name: "Boris", Plan: "vip", PaymentStatus: "Unpaid", Status: "active"},
		{ID: "m3", Name: "Cleo", Plan: "premium", PaymentStatus: "Paid", Status: "inactive"},
	}
	api.Trainers = []dto.TrainerPayload{
		{ID: "t1", Name: "Dana", Specialization: "strength", Status: "active"},
		{ID: "t2", Name: "Eli", Specialization: "cardio", Status: "inactive"},
	}
}

func TestCache_RefreshReplacesWholesale(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	seedCollections(api)
	c, dispatcher := newTestCache(t, api)
	ctx := context.Background()

	var refreshes []events.CacheRefreshedPayload
	dispatcher.Subscribe(events.EventCacheRefreshed, func(_ context.Context, e events.Event) error {
		refreshes = append(refreshes, e.Payload.(events.CacheRefreshedPayload))
		return nil
	})

	require.NoError(t, c.Refresh(ctx))

	snap := c.Snapshot()
	assert.Len(t, snap.Members, 3)
	assert.Len(t, snap.Trainers, 2)
	assert.False(t, snap.RefreshedAt.IsZero())
	require.Len(t, refreshes, 1)
	assert.Equal(t, 3, refreshes[0].Members)

	// backend changes only become visible through the next refresh
	api.Members = api.Members[:1]
	assert.Len(t, c.Snapshot().Members, 3)

	require.NoError(t, c.Refresh(ctx))
	snap = c.Snapshot()
	assert.Len(t, snap.Members, 1)
	assert.Equal(t, "m1", snap.Members[0].ID)
}

func TestCache_FailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	seedCollections(api)
	c, _ := newTestCache(t, api)
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	before := c.Snapshot()

	api.FailAuth = true
	assert.Error(t, c.Refresh(ctx))

	after := c.Snapshot()
	assert.Equal(t, before.Members, after.Members)
	assert.Equal(t, before.Trainers, after.Trainers)
}

func TestCache_Reset(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	seedCollections(api)
	c, _ := newTestCache(t, api)

	require.NoError(t, c.Refresh(context.Background()))
	c.Reset()

	snap := c.Snapshot()
	assert.Empty(t, snap.Members)
	assert.Empty(t, snap.Trainers)
	assert.True(t, snap.RefreshedAt.IsZero())
}

func TestSnapshot_Revenue(t *testing.T) {
	t.Parallel()

	snap := Snapshot{Members: []domain.Member{
		{Plan: domain.PlanBasic, PaymentStatus: domain.PaymentPaid},
		{Plan: domain.PlanVIP, PaymentStatus: domain.PaymentUnpaid},
		{Plan: domain.PlanPremium, PaymentStatus: domain.PaymentPaid},
	}}
	assert.Equal(t, 28000, snap.Revenue())
}

func TestSnapshot_RevenueIgnoresUnknownPlans(t *testing.T) {
	t.Parallel()

	snap := Snapshot{Members: []domain.Member{
		{Plan: domain.Plan("platinum"), PaymentStatus: domain.PaymentPaid},
		{Plan: domain.PlanBasic, PaymentStatus: domain.PaymentPaid},
	}}
	assert.Equal(t, 10000, snap.Revenue())
}

func TestSnapshot_Filters(t *testing.T) {
	t.Parallel()

	api := testutil.NewGymAPI()
	defer api.Close()
	seedCollections(api)
	c, _ := newTestCache(t, api)
	require.NoError(t, c.Refresh(context.Background()))
	snap := c.Snapshot()

	assert.Equal(t, 1, snap.ActiveTrainerCount())
	assert.Len(t, snap.PaidMembers(), 2)
	assert.Equal(t, "Dana", snap.TrainerName("t1"))
	assert.Equal(t, "N/A", snap.TrainerName(""))
	assert.Equal(t, "N/A", snap.TrainerName("ghost"))

	assigned := snap.MembersOfTrainer("t1")
	require.Len(t, assigned, 1)
	assert.Equal(t, "Ana", assigned[0].Name)

	_, ok := snap.MemberByID("m2")
	assert.True(t, ok)
	_, ok = snap.TrainerByID("nope")
	assert.False(t, ok)
}
