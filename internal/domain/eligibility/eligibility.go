package eligibility

import "github.com/EspacoVida/spa-portal/internal/models"

// Snapshot é o resultado puro de "pode reservar pelo plano?" sobre a
// assinatura corrente. Tudo deriva de dados que o servidor já calculou;
// nada aqui inventa contadores.
type Snapshot struct {
	HasActiveSubscription   bool
	RemainingThisMonth      int
	CanBookWithSubscription bool
}

func Evaluate(sub *models.Subscription) Snapshot {
	snap := Snapshot{}
	if sub == nil {
		return snap
	}

	snap.HasActiveSubscription = sub.Status == models.SubscriptionActive
	snap.RemainingThisMonth = sub.RemainingThisMonth
	snap.CanBookWithSubscription = snap.HasActiveSubscription && snap.RemainingThisMonth > 0

	return snap
}

// IsIncludedInPlan testa pertinência por id — nunca igualdade profunda.
func IsIncludedInPlan(sub *models.Subscription, serviceID uint) bool {
	if sub == nil {
		return false
	}
	return sub.Plan.Includes(serviceID)
}
