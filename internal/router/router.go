package router

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/auth"
	"github.com/gymkit/dashboard/internal/cache"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/internal/session"
	"github.com/gymkit/dashboard/internal/view"
)

// Router dispatches page navigation: it gates pages by role, refreshes the
// domain cache where a page needs it, renders the view model, and maintains
// the single-active page and nav link markers.
type Router struct {
	sessions *session.Store
	cache    *cache.Cache
	logger   *zap.Logger
	clock    func() time.Time

	// generation increases on every navigation; results belonging to a
	// superseded generation are discarded instead of overwriting newer state.
	generation atomic.Uint64

	mu         sync.Mutex
	activePage domain.PageID
	activeNav  domain.PageID
}

// New builds the router.
func New(sessions *session.Store, dataCache *cache.Cache, logger *zap.Logger) *Router {
	return &Router{
		sessions: sessions,
		cache:    dataCache,
		logger:   logger,
		clock:    time.Now,
	}
}

// Navigate renders the requested page. Unknown or role-disallowed targets are
// a silent no-op, as is any navigation while logged out; both return ok=false
// with no state change.
func (r *Router) Navigate(ctx context.Context, page domain.PageID) (*view.Page, bool) {
	sess, ok := r.sessions.Current()
	if !ok {
		return nil, false
	}
	if !auth.CanView(sess.Role, page) {
		r.logger.Debug("navigation ignored",
			zap.String("page", string(page)),
			zap.String("role", string(sess.Role)),
		)
		return nil, false
	}

	gen := r.generation.Add(1)

	if needsRefresh(sess.Role, page) {
		// Awaited to completion: the renderer below never reads a
		// half-updated snapshot. Failures keep the previous snapshot.
		_ = r.cache.Refresh(ctx)
	}

	// A newer navigation started while the refresh was in flight; this
	// render is stale and must not overwrite the active markers.
	if r.generation.Load() != gen {
		return nil, false
	}

	// The forced-logout path may have cleared the session during the fetch.
	sess, ok = r.sessions.Current()
	if !ok {
		return nil, false
	}

	rendered := view.RenderPage(page, *sess, r.cache.Snapshot(), r.clock())

	r.mu.Lock()
	r.activePage = page
	r.activeNav = page
	r.mu.Unlock()

	return &rendered, true
}

// ActivePage returns the single page currently marked active ("" when none).
func (r *Router) ActivePage() domain.PageID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activePage
}

// ActiveNav returns the single nav link currently marked active ("" when none).
func (r *Router) ActiveNav() domain.PageID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeNav
}

// Reset clears the active markers, part of logout teardown.
func (r *Router) Reset() {
	r.generation.Add(1)
	r.mu.Lock()
	r.activePage = ""
	r.activeNav = ""
	r.mu.Unlock()
}

// SetClock overrides the renderer's time source.
func (r *Router) SetClock(clock func() time.Time) {
	r.clock = clock
}

// needsRefresh reports whether the page reads admin collections and therefore
// rebuilds the cache before rendering. Member and trainer pages render from
// the session identity; their collection endpoints are admin-only.
func needsRefresh(role domain.Role, page domain.PageID) bool {
	if role != domain.RoleAdmin {
		return false
	}
	switch page {
	case domain.PageDashboard, domain.PageMembers, domain.PageTrainers:
		return true
	}
	return false
}
