package notify

import (
	"sync"

	"github.com/EspacoVida/spa-portal/internal/logger"
)

// Fluxo assíncrono de mensagens de status para a UI (toasts). Mutação de
// store e passo do fluxo de reserva sempre produzem um evento aqui.

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Event struct {
	Level   Level
	Code    string
	Message string
}

type Handler func(Event)

type Dispatcher struct {
	handler Handler
	queue   chan Event

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(handler Handler) *Dispatcher {
	if handler == nil {
		handler = func(ev Event) {
			logger.Info("notify", "level", string(ev.Level), "code", ev.Code, "message", ev.Message)
		}
	}

	d := &Dispatcher{
		handler: handler,
		queue:   make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.handler(ev)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		// teardown já aconteceu; evento tardio é só descartado
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a mensagem (nunca travar a UI)
		logger.Warn("notify queue full, dropping event", "code", ev.Code)
	}
}

func (d *Dispatcher) Success(code, message string) {
	d.Dispatch(Event{Level: LevelSuccess, Code: code, Message: message})
}

func (d *Dispatcher) Error(code, message string) {
	d.Dispatch(Event{Level: LevelError, Code: code, Message: message})
}

// Close drena e encerra o worker. Idempotente; Dispatch depois do Close
// vira no-op em vez de pânico.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	close(d.queue)
}
