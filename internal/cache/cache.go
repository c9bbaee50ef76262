package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gymkit/dashboard/internal/clients"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/internal/events"
)

// Snapshot is an immutable view of the last successful fetch. Reads are pure
// lookups; staleness is bounded only by how recently Refresh ran.
type Snapshot struct {
	Members     []domain.Member
	Trainers    []domain.Trainer
	RefreshedAt time.Time
}

// Cache holds the in-memory snapshot of members and trainers. It is rebuilt
// wholesale after any mutation and before every admin data page render; it is
// never partially patched.
type Cache struct {
	client     *clients.GymClient
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu   sync.RWMutex
	snap Snapshot
}

// New builds an empty cache.
func New(client *clients.GymClient, dispatcher events.Dispatcher, logger *zap.Logger) *Cache {
	return &Cache{client: client, dispatcher: dispatcher, logger: logger}
}

// Refresh fetches both collections in parallel and replaces the snapshot
// wholesale. On any failure the previous snapshot is kept untouched.
func (c *Cache) Refresh(ctx context.Context) error {
	var (
		members  []domain.Member
		trainers []domain.Trainer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = c.client.ListMembers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		trainers, err = c.client.ListTrainers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("cache refresh failed", zap.Error(err))
		return err
	}

	snap := Snapshot{Members: members, Trainers: trainers, RefreshedAt: time.Now()}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	_ = c.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventCacheRefreshed,
		Timestamp: snap.RefreshedAt,
		Payload:   events.CacheRefreshedPayload{Members: len(members), Trainers: len(trainers)},
	})
	return nil
}

// Snapshot returns the current snapshot.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Reset empties the cache, part of logout teardown.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.snap = Snapshot{}
	c.mu.Unlock()
}

// ActiveTrainerCount counts trainers whose status is active.
func (s Snapshot) ActiveTrainerCount() int {
	count := 0
	for _, t := range s.Trainers {
		if t.Status == domain.StatusActive {
			count++
		}
	}
	return count
}

// PaidMembers filters members whose payment status is Paid.
func (s Snapshot) PaidMembers() []domain.Member {
	var paid []domain.Member
	for _, m := range s.Members {
		if m.PaymentStatus == domain.PaymentPaid {
			paid = append(paid, m)
		}
	}
	return paid
}

// Revenue sums plan prices over paid members. Unknown plans price at zero, so
// an unpaid member or a bad plan value never contributes.
func (s Snapshot) Revenue() int {
	total := 0
	for _, m := range s.PaidMembers() {
		total += m.Plan.Price()
	}
	return total
}

// MemberByID resolves a member weak reference.
func (s Snapshot) MemberByID(id string) (domain.Member, bool) {
	for _, m := range s.Members {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Member{}, false
}

// TrainerByID resolves a trainer weak reference.
func (s Snapshot) TrainerByID(id string) (domain.Trainer, bool) {
	for _, t := range s.Trainers {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Trainer{}, false
}

// TrainerName resolves an assigned-trainer reference to a display name,
// "N/A" when unassigned or dangling.
func (s Snapshot) TrainerName(id string) string {
	if id == "" {
		return "N/A"
	}
	if t, ok := s.TrainerByID(id); ok {
		return t.Name
	}
	return "N/A"
}

// MembersOfTrainer lists members assigned to the given trainer.
func (s Snapshot) MembersOfTrainer(trainerID string) []domain.Member {
	var assigned []domain.Member
	for _, m := range s.Members {
		if m.TrainerID == trainerID {
			assigned = append(assigned, m)
		}
	}
	return assigned
}
