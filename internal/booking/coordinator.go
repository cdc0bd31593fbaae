package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/EspacoVida/spa-portal/internal/api"
	"github.com/EspacoVida/spa-portal/internal/apierr"
	domainap "github.com/EspacoVida/spa-portal/internal/domain/appointment"
	"github.com/EspacoVida/spa-portal/internal/domain/eligibility"
	domainvoucher "github.com/EspacoVida/spa-portal/internal/domain/voucher"
	"github.com/EspacoVida/spa-portal/internal/models"
	"github.com/EspacoVida/spa-portal/internal/notify"
	"github.com/EspacoVida/spa-portal/internal/payment"
	"github.com/EspacoVida/spa-portal/internal/session"
	"github.com/EspacoVida/spa-portal/internal/store"
	"github.com/EspacoVida/spa-portal/internal/timezone"
	"github.com/EspacoVida/spa-portal/internal/validators"
)

// ======================================================
// COORDENADOR DO FLUXO DE RESERVA
// ======================================================
//
// serviço escolhido → decisão de origem → mutação → navegação.
// Reserva pelo plano e por voucher vão direto para a agenda; avulsa
// passa pelo processador de pagamento e navega para a confirmação de
// checkout.

type Destination string

const (
	DestAgenda   Destination = "agenda"
	DestCheckout Destination = "checkout"
)

type Decision struct {
	Origin          domainap.Origin
	RequiresPayment bool
	Price           float64
}

type Coordinator struct {
	api     *api.Client
	sess    *session.Session
	subs    *store.SubscriptionStore
	appts   *store.AppointmentStore
	anms    *store.AnamnesisStore
	payment payment.Processor
	notify  *notify.Dispatcher
}

func NewCoordinator(
	client *api.Client,
	sess *session.Session,
	subs *store.SubscriptionStore,
	appts *store.AppointmentStore,
	anms *store.AnamnesisStore,
	processor payment.Processor,
	notifier *notify.Dispatcher,
) *Coordinator {
	return &Coordinator{
		api:     client,
		sess:    sess,
		subs:    subs,
		appts:   appts,
		anms:    anms,
		payment: processor,
		notify:  notifier,
	}
}

// Decide responde "como essa reserva seria paga" sem efeito colateral.
// A UI usa para montar o modal (preço, aviso de pagamento, voucher).
func (c *Coordinator) Decide(svc models.Service, chosen *models.Voucher) (Decision, error) {

	// voucher escolhido explicitamente passa na frente do plano
	if chosen != nil {
		if err := domainvoucher.CanActivate(chosen, &svc, timezone.Now()); err != nil {
			return Decision{}, err
		}
		return Decision{Origin: domainap.OriginVoucher}, nil
	}

	sub := c.subs.Current()
	snap := eligibility.Evaluate(sub)
	if snap.CanBookWithSubscription && eligibility.IsIncludedInPlan(sub, svc.ID) {
		return Decision{Origin: domainap.OriginSubscription}, nil
	}

	return Decision{
		Origin:          domainap.OriginSingle,
		RequiresPayment: true,
		Price:           svc.Price,
	}, nil
}

type ConfirmInput struct {
	Service models.Service
	Start   time.Time
	Voucher *models.Voucher

	// Contato para o recibo do pagamento avulso (opcional).
	ContactEmail string
	Notes        string
}

type Outcome struct {
	Appointment *models.Appointment
	Destination Destination
	PaymentURL  string
}

func (c *Coordinator) Confirm(ctx context.Context, in ConfirmInput) (*Outcome, error) {

	// --------------------------------------------------
	// 1. Proteção contra reenvio durante refetch em voo
	// --------------------------------------------------
	if c.appts.Busy() {
		return nil, ErrFlow("booking_in_progress", "Já existe uma reserva em andamento.")
	}

	// --------------------------------------------------
	// 2. Anamnese precisa estar completa (ficha + termos)
	// --------------------------------------------------
	if !c.anms.HasCompleted() {
		return nil, ErrFlow("anamnesis_required", "Complete a ficha de anamnese antes de reservar.")
	}

	// --------------------------------------------------
	// 3. Decisão de origem
	// --------------------------------------------------
	dec, err := c.Decide(in.Service, in.Voucher)
	if err != nil {
		c.notify.Error("voucher_invalid", "Este voucher não pode ser usado para este serviço.")
		return nil, err
	}

	switch dec.Origin {
	case domainap.OriginVoucher:
		return c.confirmWithVoucher(ctx, in)
	case domainap.OriginSubscription:
		return c.confirmWithSubscription(ctx, in)
	default:
		return c.confirmSingle(ctx, in, dec)
	}
}

// --------------------------------------------------
// Reserva pelo plano: sem pagamento, navega para a agenda
// --------------------------------------------------
func (c *Coordinator) confirmWithSubscription(ctx context.Context, in ConfirmInput) (*Outcome, error) {
	ap, err := c.appts.Create(ctx, api.CreateAppointmentInput{
		ServiceID: in.Service.ID,
		StartTime: in.Start,
		Origin:    string(domainap.OriginSubscription),
		Notes:     in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// contadores de uso mudaram no servidor → refetch explícito
	_ = c.subs.Load(ctx)

	return &Outcome{Appointment: ap, Destination: DestAgenda}, nil
}

// --------------------------------------------------
// Reserva por voucher: ativa no servidor, depois agenda
// --------------------------------------------------
func (c *Coordinator) confirmWithVoucher(ctx context.Context, in ConfirmInput) (*Outcome, error) {
	activated, err := c.api.ActivateVoucher(ctx, in.Voucher.ID)
	if err != nil {
		c.notify.Error("voucher_activation_failed", apierr.Message(err))
		return nil, err
	}

	ap, err := c.appts.Create(ctx, api.CreateAppointmentInput{
		ServiceID: in.Service.ID,
		StartTime: in.Start,
		Origin:    string(domainap.OriginVoucher),
		VoucherID: &activated.ID,
		Notes:     in.Notes,
	})
	if err != nil {
		return nil, err
	}

	return &Outcome{Appointment: ap, Destination: DestAgenda}, nil
}

// --------------------------------------------------
// Reserva avulsa: agenda pendente de pagamento e entrega o redirect
// --------------------------------------------------
func (c *Coordinator) confirmSingle(ctx context.Context, in ConfirmInput, dec Decision) (*Outcome, error) {
	if in.ContactEmail != "" && !validators.IsEmailValid(in.ContactEmail) {
		return nil, ErrFlow("invalid_email", "E-mail de contato inválido.")
	}

	ap, err := c.appts.Create(ctx, api.CreateAppointmentInput{
		ServiceID: in.Service.ID,
		StartTime: in.Start,
		Origin:    string(domainap.OriginSingle),
		Notes:     in.Notes,
	})
	if err != nil {
		return nil, err
	}

	url, err := c.payment.CheckoutURL(ctx, payment.Checkout{
		UserID:    c.sess.UserID(),
		Title:     in.Service.Name,
		Amount:    dec.Price,
		Reference: fmt.Sprintf("appointment:%d", ap.ID),
	})
	if err != nil {
		// agendamento fica pendente; o servidor expira sem pagamento
		c.notify.Error("payment_start_failed", apierr.Message(err))
		return nil, err
	}

	return &Outcome{
		Appointment: ap,
		Destination: DestCheckout,
		PaymentURL:  url,
	}, nil
}
