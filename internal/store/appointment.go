package store

import (
	"context"
	"sync"
	"time"

	"github.com/EspacoVida/spa-portal/internal/api"
	"github.com/EspacoVida/spa-portal/internal/apierr"
	"github.com/EspacoVida/spa-portal/internal/models"
	"github.com/EspacoVida/spa-portal/internal/notify"
	"github.com/EspacoVida/spa-portal/internal/session"
)

// AppointmentStore é dono da lista de agendamentos do usuário no cliente.
type AppointmentStore struct {
	mu sync.Mutex

	api    *api.Client
	sess   *session.Session
	notify *notify.Dispatcher

	state   State
	items   []models.Appointment
	lastErr error

	fetches fence
	busy    bool
}

func NewAppointmentStore(client *api.Client, sess *session.Session, notifier *notify.Dispatcher) *AppointmentStore {
	s := &AppointmentStore{
		api:    client,
		sess:   sess,
		notify: notifier,
	}
	sess.OnClear(s.Clear)
	return s
}

func (s *AppointmentStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AppointmentStore) Items() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Appointment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AppointmentStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *AppointmentStore) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *AppointmentStore) Load(ctx context.Context) error {
	userID := s.sess.UserID()
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	s.state = StateLoading
	seq := s.fetches.next()
	s.mu.Unlock()

	items, err := s.api.ListAppointmentsByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetches.latest(seq) {
		return nil
	}

	switch {
	case err == nil:
		s.state = StateLoaded
		s.items = items
		s.lastErr = nil
	case apierr.IsNotFound(err):
		// lista vazia, não erro
		s.state = StateLoaded
		s.items = nil
		s.lastErr = nil
	default:
		s.state = StateFailed
		s.lastErr = err
		return err
	}

	return nil
}

func (s *AppointmentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.items = nil
	s.lastErr = nil
	s.busy = false
	s.fetches.bump()
}

// ======================================================
// MUTAÇÕES
// ======================================================

// Create agenda e devolve o agendamento criado (já PENDING no servidor).
func (s *AppointmentStore) Create(ctx context.Context, in api.CreateAppointmentInput) (*models.Appointment, error) {
	var created *models.Appointment
	err := s.mutate(ctx, "appointment_created", "Agendamento criado com sucesso.",
		"appointment_create_failed", "Não foi possível criar o agendamento.",
		func(ctx context.Context) error {
			ap, err := s.api.CreateAppointment(ctx, in)
			if err != nil {
				return err
			}
			created = ap
			return nil
		})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AppointmentStore) Cancel(ctx context.Context, id uint, reason string) error {
	return s.mutate(ctx, "appointment_canceled", "Agendamento cancelado.",
		"appointment_cancel_failed", "Não foi possível cancelar o agendamento.",
		func(ctx context.Context) error {
			return s.api.CancelAppointment(ctx, id, api.CancelAppointmentInput{Reason: reason})
		})
}

func (s *AppointmentStore) Reschedule(ctx context.Context, id uint, start time.Time) error {
	return s.mutate(ctx, "appointment_rescheduled", "Agendamento remarcado.",
		"appointment_reschedule_failed", "Não foi possível remarcar o agendamento.",
		func(ctx context.Context) error {
			_, err := s.api.RescheduleAppointment(ctx, id, api.RescheduleAppointmentInput{StartTime: start})
			return err
		})
}

func (s *AppointmentStore) mutate(
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
		s.notify.Error(failCode, mutationMessage(err, failMsg))
		return err
	}

	s.notify.Success(successCode, successMsg)

	// A mutação já valeu no servidor. Falha do refetch fica no estado do
	// store (Failed + Err), nunca no resultado da mutação — senão o
	// chamador retentaria uma operação que já aconteceu.
	_ = s.Load(ctx)
	return nil
}
