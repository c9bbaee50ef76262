package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/api/dto"
	"github.com/gymkit/dashboard/internal/config"
	"github.com/gymkit/dashboard/internal/events"
	"github.com/gymkit/dashboard/internal/observability"
	"github.com/gymkit/dashboard/pkg/util"
)

func newTestClient(baseURL string, dispatcher events.Dispatcher) *GymClient {
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	cfg := config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5}
	return NewGymClient(cfg, zap.NewNop(), observability.NewMetrics(), dispatcher)
}

func TestGymClient_AttachesHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, nil)
	client.SetTokenSource(func() string { return "tok123" })

	_, err := client.ListMembers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestGymClient_NoBearerWhenLoggedOut(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, nil)
	client.SetTokenSource(func() string { return "" })

	_, err := client.ListTrainers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestGymClient_BackendMessageExtracted(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"username already taken"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, nil)
	err := client.CreateMember(context.Background(), dto.MemberRequest{Name: "x"})

	ce := util.ToClientError(err)
	require.NotNil(t, ce)
	assert.Equal(t, util.KindHTTP, ce.Kind)
	assert.Equal(t, http.StatusConflict, ce.HTTPStatus)
	assert.Equal(t, "username already taken", ce.Message)
}

func TestGymClient_GenericMessageWhenBodyUnparseable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, nil)
	_, err := client.ListMembers(context.Background())

	ce := util.ToClientError(err)
	require.NotNil(t, ce)
	assert.Equal(t, "Internal Server Error", ce.Message)
}

func TestGymClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := newTestClient(srv.URL, nil)
	_, err := client.ListMembers(context.Background())

	ce := util.ToClientError(err)
	require.NotNil(t, ce)
	assert.Equal(t, util.KindNetwork, ce.Kind)
	assert.False(t, util.IsAuthFailure(err))
}

func TestGymClient_UnauthorizedRevokesSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"session expired"}`))
	}))
	defer srv.Close()

	dispatcher := events.NewInMemoryDispatcher()
	var revoked []events.SessionRevokedPayload
	dispatcher.Subscribe(events.EventSessionRevoked, func(_ context.Context, e events.Event) error {
		revoked = append(revoked, e.Payload.(events.SessionRevokedPayload))
		return nil
	})

	client := newTestClient(srv.URL, dispatcher)
	err := client.DeleteMember(context.Background(), "m1")

	require.Error(t, err)
	assert.True(t, util.IsAuthFailure(err))
	require.Len(t, revoked, 1)
	assert.Equal(t, http.StatusUnauthorized, revoked[0].Status)
}

func TestGymClient_LoginRejectionDoesNotRevoke(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid username or password"}`))
	}))
	defer srv.Close()

	dispatcher := events.NewInMemoryDispatcher()
	revokedCount := 0
	dispatcher.Subscribe(events.EventSessionRevoked, func(context.Context, events.Event) error {
		revokedCount++
		return nil
	})

	client := newTestClient(srv.URL, dispatcher)
	_, err := client.Login(context.Background(), "ana", "wrong")

	ce := util.ToClientError(err)
	require.NotNil(t, ce)
	assert.Equal(t, util.KindAuth, ce.Kind)
	// the backend message reaches the user verbatim
	assert.Equal(t, "invalid username or password", ce.Message)
	assert.Zero(t, revokedCount)
}

func TestGymClient_DeleteSucceedsWithoutBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, nil)
	assert.NoError(t, client.DeleteTrainer(context.Background(), "t1"))
}
