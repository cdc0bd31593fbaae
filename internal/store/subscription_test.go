package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspacoVida/spa-portal/internal/api"
	"github.com/EspacoVida/spa-portal/internal/models"
	"github.com/EspacoVida/spa-portal/internal/notify"
	"github.com/EspacoVida/spa-portal/internal/session"
)

// ======================================================
// HELPERS
// ======================================================

type eventLog struct {
	mu     sync.Mutex
	events []notify.Event
}

func (l *eventLog) handler() notify.Handler {
	return func(ev notify.Event) {
		l.mu.Lock()
		l.events = append(l.events, ev)
		l.mu.Unlock()
	}
}

func (l *eventLog) has(code string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ev := range l.events {
		if ev.Code == code {
			return true
		}
	}
	return false
}

func testSession(t *testing.T, userID string) *session.Session {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": "CLIENT",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	sess, err := session.FromToken(token)
	require.NoError(t, err)
	return sess
}

func newEnv(t *testing.T, register func(r *gin.Engine)) (*api.Client, *session.Session, *eventLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess := testSession(t, "user-1")
	client := api.New(srv.URL, sess.HTTPClient(5*time.Second))

	return client, sess, &eventLog{}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, code string) {
	c.JSON(status, gin.H{"success": false, "error": code})
}

func activeSub() models.Subscription {
	return models.Subscription{
		ID:     10,
		UserID: "user-1",
		Status: models.SubscriptionActive,
		Plan: models.Plan{
			ID:         2,
			Tier:       models.TierSilver,
			ServiceIDs: []uint{1, 2},
		},
		RemainingThisMonth: 4,
	}
}

// ======================================================
// FETCH
// ======================================================

func TestSubscriptionLoad_Success(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			ok(c, activeSub())
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, StateLoaded, s.State())
	require.NotNil(t, s.Current())
	assert.Equal(t, uint(10), s.Current().ID)
	assert.NoError(t, s.Err())
}

func TestSubscriptionLoad_NotFoundIsAbsentNotError(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			fail(c, http.StatusNotFound, "subscription_not_found")
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, StateLoaded, s.State())
	assert.Nil(t, s.Current())
	assert.NoError(t, s.Err(), "ausência esperada não é estado de erro")
}

func TestSubscriptionLoad_ServerFailure(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			fail(c, http.StatusInternalServerError, "internal_error")
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)

	err := s.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateFailed, s.State())
	assert.Error(t, s.Err())
}

func TestSubscriptionLoad_WithoutUserStaysIdle(t *testing.T) {
	client, _, log := newEnv(t, func(r *gin.Engine) {})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	anon, err := session.FromToken("")
	require.NoError(t, err)

	s := NewSubscriptionStore(client, anon, notifier)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateIdle, s.State())
}

// ======================================================
// MUTAÇÃO → REFETCH
// ======================================================

func TestSubscriptionCancel_RefetchesAfterSuccess(t *testing.T) {
	canceled := false
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			sub := activeSub()
			if canceled {
				sub.Status = models.SubscriptionCanceled
			}
			ok(c, sub)
		})
		r.PATCH("/subscriptions/:id/cancel", func(c *gin.Context) {
			canceled = true
			ok(c, gin.H{})
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Cancel(context.Background()))

	// o estado final vem do refetch, nunca de patch local
	require.NotNil(t, s.Current())
	assert.Equal(t, models.SubscriptionCanceled, s.Current().Status)

	assert.Eventually(t, func() bool {
		return log.has("subscription_canceled")
	}, time.Second, 10*time.Millisecond)
}

func TestSubscriptionCancel_FailureLeavesStateUntouched(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			ok(c, activeSub())
		})
		r.PATCH("/subscriptions/:id/cancel", func(c *gin.Context) {
			fail(c, http.StatusUnprocessableEntity, "min_commitment_not_reached")
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.NoError(t, s.Load(context.Background()))

	err := s.Cancel(context.Background())

	require.Error(t, err)
	assert.NotEmpty(t, err.Error())

	// cache anterior intocado
	assert.Equal(t, StateLoaded, s.State())
	require.NotNil(t, s.Current())
	assert.Equal(t, models.SubscriptionActive, s.Current().Status)

	assert.Eventually(t, func() bool {
		return log.has("subscription_cancel_failed")
	}, time.Second, 10*time.Millisecond)
}

func TestSubscriptionCancel_RefetchFailureIsNotMutationFailure(t *testing.T) {
	canceled := false
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			if canceled {
				fail(c, http.StatusInternalServerError, "internal_error")
				return
			}
			ok(c, activeSub())
		})
		r.PATCH("/subscriptions/:id/cancel", func(c *gin.Context) {
			canceled = true
			ok(c, gin.H{})
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.NoError(t, s.Load(context.Background()))

	// o cancelamento valeu no servidor; o refetch quebrado não o desfaz
	require.NoError(t, s.Cancel(context.Background()))

	assert.Equal(t, StateFailed, s.State())
	assert.Error(t, s.Err())

	assert.Eventually(t, func() bool {
		return log.has("subscription_canceled")
	}, time.Second, 10*time.Millisecond)
}

func TestSubscriptionCancel_WithoutSubscription(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			fail(c, http.StatusNotFound, "subscription_not_found")
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.NoError(t, s.Load(context.Background()))

	err := s.Cancel(context.Background())

	require.Error(t, err)
}

func TestSubscriptionChangePlan_UpgradeMessage(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			ok(c, activeSub())
		})
		r.PATCH("/subscriptions/:id/plan", func(c *gin.Context) {
			ok(c, gin.H{})
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.NoError(t, s.Load(context.Background()))

	gold := models.Plan{ID: 3, Tier: models.TierGold}
	require.NoError(t, s.ChangePlan(context.Background(), gold))

	assert.Eventually(t, func() bool {
		return log.has("subscription_plan_changed")
	}, time.Second, 10*time.Millisecond)
}

// ======================================================
// FENCING + TEARDOWN
// ======================================================

func TestSubscriptionLoad_StaleResolutionDiscardedAfterClear(t *testing.T) {
	release := make(chan struct{})
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			<-release
			ok(c, activeSub())
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()

	// garante que o fetch entrou em voo antes do logout
	require.Eventually(t, func() bool {
		return s.State() == StateLoading
	}, time.Second, 5*time.Millisecond)

	sess.Clear()
	close(release)

	require.NoError(t, <-done)

	// a resolução chegou depois do teardown e foi descartada
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Current())
}

func TestSessionClear_ResetsStore(t *testing.T) {
	client, sess, log := newEnv(t, func(r *gin.Engine) {
		r.GET("/users/:id/subscription", func(c *gin.Context) {
			ok(c, activeSub())
		})
	})
	notifier := notify.NewDispatcher(log.handler())
	defer notifier.Close()

	s := NewSubscriptionStore(client, sess, notifier)
	require.NoError(t, s.Load(context.Background()))
	require.NotNil(t, s.Current())

	sess.Clear()

	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Current())
	assert.NoError(t, s.Err())
}
