package store

import (
	"context"
	"sync"

	"github.com/EspacoVida/spa-portal/internal/api"
	"github.com/EspacoVida/spa-portal/internal/apierr"
	domainplan "github.com/EspacoVida/spa-portal/internal/domain/plan"
	"github.com/EspacoVida/spa-portal/internal/models"
	"github.com/EspacoVida/spa-portal/internal/notify"
	"github.com/EspacoVida/spa-portal/internal/session"
)

// SubscriptionStore é dono do ciclo de vida da assinatura no cliente:
// fetch, cache, mutação com refetch e mensagens de status.
type SubscriptionStore struct {
	mu sync.Mutex

	api    *api.Client
	sess   *session.Session
	notify *notify.Dispatcher

	state   State
	current *models.Subscription
	lastErr error

	fetches fence
	busy    bool
}

func NewSubscriptionStore(client *api.Client, sess *session.Session, notifier *notify.Dispatcher) *SubscriptionStore {
	s := &SubscriptionStore{
		api:    client,
		sess:   sess,
		notify: notifier,
	}
	sess.OnClear(s.Clear)
	return s
}

func (s *SubscriptionStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current devolve a assinatura corrente ou nil (ausente/não carregada).
func (s *SubscriptionStore) Current() *models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SubscriptionStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *SubscriptionStore) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Load busca a assinatura do usuário da sessão. "Não encontrada" resolve
// para Loaded(ausente) com erro nil — usuário ainda sem assinatura não é
// falha.
func (s *SubscriptionStore) Load(ctx context.Context) error {
	userID := s.sess.UserID()
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	s.state = StateLoading
	seq := s.fetches.next()
	s.mu.Unlock()

	sub, err := s.api.GetSubscriptionByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetches.latest(seq) {
		// resolução obsoleta: outra busca (ou logout) passou na frente
		return nil
	}

	switch {
	case err == nil:
		s.state = StateLoaded
		s.current = sub
		s.lastErr = nil
	case apierr.IsNotFound(err):
		s.state = StateLoaded
		s.current = nil
		s.lastErr = nil
	default:
		s.state = StateFailed
		s.lastErr = err
		return err
	}

	return nil
}

func (s *SubscriptionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.current = nil
	s.lastErr = nil
	s.busy = false
	s.fetches.bump()
}

// ======================================================
// MUTAÇÕES (mutação → refetch incondicional)
// ======================================================

func (s *SubscriptionStore) Subscribe(ctx context.Context, planID uint) error {
	return s.mutate(ctx, "subscription_created", "Assinatura criada com sucesso.",
		"subscription_create_failed", "Não foi possível criar a assinatura.",
		func(ctx context.Context) error {
			_, err := s.api.CreateSubscription(ctx, api.CreateSubscriptionInput{PlanID: planID})
			return err
		})
}

func (s *SubscriptionStore) Cancel(ctx context.Context) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.mutate(ctx, "subscription_canceled", "Assinatura cancelada.",
		"subscription_cancel_failed", "Não foi possível cancelar a assinatura.",
		func(ctx context.Context) error {
			return s.api.CancelSubscription(ctx, id)
		})
}

func (s *SubscriptionStore) Pause(ctx context.Context) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.mutate(ctx, "subscription_paused", "Assinatura pausada.",
		"subscription_pause_failed", "Não foi possível pausar a assinatura.",
		func(ctx context.Context) error {
			return s.api.PauseSubscription(ctx, id)
		})
}

func (s *SubscriptionStore) Reactivate(ctx context.Context) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.mutate(ctx, "subscription_reactivated", "Assinatura reativada.",
		"subscription_reactivate_failed", "Não foi possível reativar a assinatura.",
		func(ctx context.Context) error {
			return s.api.ReactivateSubscription(ctx, id)
		})
}

func (s *SubscriptionStore) ChangePlan(ctx context.Context, newPlan models.Plan) error {
	s.mu.Lock()
	cur := s.current
	s.mu.Unlock()
	if cur == nil {
		return apierr.New(0, "no_subscription", "Nenhuma assinatura ativa.")
	}

	successMsg := "Plano alterado com sucesso."
	switch domainplan.ClassifyChange(cur.Plan.Tier, newPlan.Tier) {
	case domainplan.ChangeUpgrade:
		successMsg = "Upgrade de plano realizado com sucesso."
	case domainplan.ChangeDowngrade:
		successMsg = "Downgrade de plano realizado com sucesso."
	}

	return s.mutate(ctx, "subscription_plan_changed", successMsg,
		"subscription_plan_change_failed", "Não foi possível alterar o plano.",
		func(ctx context.Context) error {
			return s.api.ChangeSubscriptionPlan(ctx, cur.ID, api.ChangePlanInput{PlanID: newPlan.ID})
		})
}

func (s *SubscriptionStore) currentID() (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0, apierr.New(0, "no_subscription", "Nenhuma assinatura ativa.")
	}
	return s.current.ID, nil
}

func (s *SubscriptionStore) mutate(
	ctx context.Context,
	successCode, successMsg string,
	failCode, failMsg string,
	op func(context.Context) error,
) error {

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return apierr.New(0, "operation_in_progress", "Aguarde a operação anterior terminar.")
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if err := op(ctx); err != nil {
		// estado anterior fica intocado; só a mensagem sobe
		s.notify.Error(failCode, mutationMessage(err, failMsg))
		return err
	}

	s.notify.Success(successCode, successMsg)

	// A mutação já valeu no servidor. Falha do refetch fica no estado do
	// store (Failed + Err), nunca no resultado da mutação.
	_ = s.Load(ctx)
	return nil
}

// mutationMessage: rejeição de validação carrega a mensagem específica do
// servidor; o resto vira a mensagem genérica da operação.
func mutationMessage(err error, generic string) string {
	if apierr.IsValidation(err) {
		if msg := apierr.Message(err); msg != "" {
			return msg
		}
	}
	return generic
}
