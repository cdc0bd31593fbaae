package store

import (
	"context"
	"sync"

	"github.com/EspacoVida/spa-portal/internal/api"
	"github.com/EspacoVida/spa-portal/internal/apierr"
	"github.com/EspacoVida/spa-portal/internal/domain/anamnesis"
	"github.com/EspacoVida/spa-portal/internal/notify"
	"github.com/EspacoVida/spa-portal/internal/session"
)

// AnamnesisStore é dono da ficha de anamnese no cliente. O cache guarda a
// forma normalizada; a tradução de/para o fio fica nos adaptadores.
type AnamnesisStore struct {
	mu sync.Mutex

	api    *api.Client
	sess   *session.Session
	notify *notify.Dispatcher

	state    State
	form     *anamnesis.Form
	recordID uint
	lastErr  error

	fetches fence
	busy    bool
}

func NewAnamnesisStore(client *api.Client, sess *session.Session, notifier *notify.Dispatcher) *AnamnesisStore {
	s := &AnamnesisStore{
		api:    client,
		sess:   sess,
		notify: notifier,
	}
	sess.OnClear(s.Clear)
	return s
}

func (s *AnamnesisStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form devolve a ficha normalizada ou nil se ausente/não carregada.
func (s *AnamnesisStore) Form() *anamnesis.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *AnamnesisStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *AnamnesisStore) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// HasCompleted: ficha existe E termos aceitos. Existência sozinha não
// libera reserva.
func (s *AnamnesisStore) HasCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return anamnesis.IsComplete(s.form)
}

func (s *AnamnesisStore) Load(ctx context.Context) error {
	userID := s.sess.UserID()
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	s.state = StateLoading
	seq := s.fetches.next()
	s.mu.Unlock()

	rec, err := s.api.GetAnamnesisByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetches.latest(seq) {
		return nil
	}

	switch {
	case err == nil:
		form := anamnesis.ToNormalized(rec)
		s.state = StateLoaded
		s.form = &form
		s.recordID = rec.ID
		s.lastErr = nil
	case apierr.IsNotFound(err):
		s.state = StateLoaded
		s.form = nil
		s.recordID = 0
		s.lastErr = nil
	default:
		s.state = StateFailed
		s.lastErr = err
		return err
	}

	return nil
}

func (s *AnamnesisStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.form = nil
	s.recordID = 0
	s.lastErr = nil
	s.busy = false
	s.fetches.bump()
}

// Save cria ou atualiza a ficha conforme ela já exista no servidor.
func (s *AnamnesisStore) Save(ctx context.Context, form anamnesis.Form) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return apierr.New(0, "operation_in_progress", "Aguarde a operação anterior terminar.")
	}
	s.busy = true
	recordID := s.recordID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	rec := anamnesis.ToWire(form)
	rec.UserID = s.sess.UserID()

	var err error
	if recordID > 0 {
		_, err = s.api.UpdateAnamnesis(ctx, recordID, rec)
	} else {
		_, err = s.api.CreateAnamnesis(ctx, rec)
	}

	if err != nil {
		s.notify.Error("anamnesis_save_failed", mutationMessage(err, "Não foi possível salvar a ficha de anamnese."))
		return err
	}

	s.notify.Success("anamnesis_saved", "Ficha de anamnese salva com sucesso.")

	// Salvou no servidor; falha do refetch fica no estado do store.
	_ = s.Load(ctx)
	return nil
}
