package main

import (
	"context"
	"fmt"
	"os"

	"github.com/EspacoVida/spa-portal/internal/api"
	"github.com/EspacoVida/spa-portal/internal/config"
	domainap "github.com/EspacoVida/spa-portal/internal/domain/appointment"
	"github.com/EspacoVida/spa-portal/internal/domain/catalog"
	"github.com/EspacoVida/spa-portal/internal/domain/eligibility"
	domainplan "github.com/EspacoVida/spa-portal/internal/domain/plan"
	"github.com/EspacoVida/spa-portal/internal/logger"
	"github.com/EspacoVida/spa-portal/internal/notify"
	"github.com/EspacoVida/spa-portal/internal/session"
	"github.com/EspacoVida/spa-portal/internal/store"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg.Env)

	sess, err := session.FromToken(os.Getenv("PORTAL_TOKEN"))
	if err != nil {
		logger.Error("invalid credential", "err", err)
		os.Exit(1)
	}
	if !sess.Authenticated() {
		logger.Error("PORTAL_TOKEN não definido")
		os.Exit(1)
	}

	client := api.New(cfg.APIBaseURL, sess.HTTPClient(cfg.APITimeout))

	notifier := notify.NewDispatcher(func(ev notify.Event) {
		logger.Info("status", "level", string(ev.Level), "message", ev.Message)
	})

	subs := store.NewSubscriptionStore(client, sess, notifier)
	appts := store.NewAppointmentStore(client, sess, notifier)
	anms := store.NewAnamnesisStore(client, sess, notifier)

	ctx := context.Background()

	if err := subs.Load(ctx); err != nil {
		logger.Error("failed to load subscription", "err", err)
	}
	if err := appts.Load(ctx); err != nil {
		logger.Error("failed to load appointments", "err", err)
	}
	if err := anms.Load(ctx); err != nil {
		logger.Error("failed to load anamnesis", "err", err)
	}

	sub := subs.Current()
	snap := eligibility.Evaluate(sub)

	who := sess.UserID()
	if user, err := client.GetUser(ctx, sess.UserID()); err == nil {
		who = user.Name
	}
	fmt.Printf("Usuário: %s (%s)\n", who, sess.Role())
	if sub != nil {
		fmt.Printf("Assinatura: plano %s (%s), status %s\n", sub.Plan.Name, sub.Plan.Tier, sub.Status)
		fmt.Printf("Tratamentos restantes no mês: %d\n", snap.RemainingThisMonth)
	} else {
		fmt.Println("Assinatura: nenhuma")
	}
	fmt.Printf("Pode reservar pelo plano: %v\n", snap.CanBookWithSubscription)
	fmt.Printf("Anamnese completa: %v\n", anms.HasCompleted())

	open := 0
	for _, ap := range appts.Items() {
		if domainap.IsOpen(domainap.Status(ap.Status)) {
			open++
		}
	}
	fmt.Printf("Agendamentos: %d (%d em aberto)\n", len(appts.Items()), open)
	for _, ap := range appts.Items() {
		fmt.Printf("  #%d %s — %s (%s)\n", ap.ID, ap.StartTime.Format("02/01 15:04"), ap.Service.Name, ap.Status)
	}

	if services, err := client.ListServices(ctx, "", ""); err == nil {
		ordered := catalog.Filter(services, catalog.Query{}, sub)
		fmt.Printf("Catálogo: %d serviços ativos\n", len(ordered))
	}

	if plans, err := client.ListPlans(ctx); err == nil {
		domainplan.SortByTier(plans)
		fmt.Printf("Planos: %d\n", len(plans))
		for _, p := range plans {
			fmt.Printf("  %s (%s) — R$ %.2f/mês\n", p.Name, p.Tier, p.Price)
		}
	}
}
