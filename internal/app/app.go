package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/cache"
	"github.com/gymkit/dashboard/internal/clients"
	"github.com/gymkit/dashboard/internal/config"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/internal/events"
	"github.com/gymkit/dashboard/internal/forms"
	"github.com/gymkit/dashboard/internal/observability"
	"github.com/gymkit/dashboard/internal/router"
	"github.com/gymkit/dashboard/internal/session"
	"github.com/gymkit/dashboard/internal/view"
)

// App is the process-wide context: session, cache, router, and controllers,
// with defined initialization (restore-or-absent) and teardown (logout resets
// everything). All shared state is reached through it; nothing is package
// global.
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Client      *clients.GymClient
	Sessions    *session.Store
	Cache       *cache.Cache
	Router      *router.Router
	MemberForm  *forms.MemberForm
	TrainerForm *forms.TrainerForm
	Dispatcher  events.Dispatcher

	redisStorage *session.RedisStorage
}

// New wires the full client core. A 401/403 on any authenticated call
// publishes a session-revoked event which forces an immediate logout,
// regardless of which page initiated the request.
func New(cfg *config.Config, logger *zap.Logger) *App {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	client := clients.NewGymClient(cfg.API, logger, metrics, dispatcher)

	var (
		storage session.Storage
		redisSt *session.RedisStorage
	)
	if cfg.Redis.Addr != "" {
		redisSt = session.NewRedisStorage(cfg.Redis, logger)
		storage = redisSt
	} else {
		storage = session.NewFileStorage(cfg.Session.FilePath)
	}

	sessions := session.NewStore(storage, client, logger)
	client.SetTokenSource(sessions.Token)

	dataCache := cache.New(client, dispatcher, logger)

	a := &App{
		Config:       cfg,
		Logger:       logger,
		Client:       client,
		Sessions:     sessions,
		Cache:        dataCache,
		Router:       router.New(sessions, dataCache, logger),
		MemberForm:   forms.NewMemberForm(client, dataCache, logger),
		TrainerForm:  forms.NewTrainerForm(client, dataCache, logger),
		Dispatcher:   dispatcher,
		redisStorage: redisSt,
	}

	dispatcher.Subscribe(events.EventSessionRevoked, func(ctx context.Context, e events.Event) error {
		logger.Warn("session revoked by backend, forcing logout")
		a.Logout(ctx)
		return nil
	})

	return a
}

// Start restores a persisted session if one exists and lands on the
// dashboard; otherwise the app begins logged out.
func (a *App) Start(ctx context.Context) (*view.Page, bool) {
	if _, ok := a.Sessions.Restore(ctx); !ok {
		return nil, false
	}
	return a.Router.Navigate(ctx, domain.PageDashboard)
}

// Login authenticates and lands on the role's dashboard.
func (a *App) Login(ctx context.Context, username, password string) (*view.Page, error) {
	if _, err := a.Sessions.Login(ctx, username, password); err != nil {
		return nil, err
	}
	page, _ := a.Router.Navigate(ctx, domain.PageDashboard)
	return page, nil
}

// Logout tears the session down: in-memory state, persisted storage, cache,
// and active page markers all reset, landing the UI on the logged-out view.
func (a *App) Logout(ctx context.Context) {
	a.Sessions.Logout(ctx)
	a.Cache.Reset()
	a.Router.Reset()
	_ = a.Dispatcher.Publish(ctx, events.Event{
		Type:      events.EventSessionEnded,
		Timestamp: time.Now(),
	})
}

// Navigate dispatches to the requested page.
func (a *App) Navigate(ctx context.Context, page domain.PageID) (*view.Page, bool) {
	return a.Router.Navigate(ctx, page)
}

// Frame returns the current chrome view model.
func (a *App) Frame() view.Frame {
	sess, _ := a.Sessions.Current()
	return view.RenderFrame(sess, a.Router.ActiveNav())
}

// Close releases held resources.
func (a *App) Close() {
	if a.redisStorage != nil {
		a.redisStorage.Close()
	}
}
