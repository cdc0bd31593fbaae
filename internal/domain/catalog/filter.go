package catalog

import (
	"sort"
	"strings"

	"github.com/EspacoVida/spa-portal/internal/domain/eligibility"
	"github.com/EspacoVida/spa-portal/internal/models"
)

type Query struct {
	Category models.ServiceCategory
	Search   string
}

// Filter aplica os filtros do catálogo e, quando o usuário tem assinatura
// ativa, reordena os serviços inclusos no plano para a frente (estável).
// Os filtros vêm antes da reordenação.
func Filter(services []models.Service, q Query, sub *models.Subscription) []models.Service {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if !svc.Active {
			continue
		}
		if q.Category != "" && svc.Category != q.Category {
			continue
		}
		if search != "" && !matchesSearch(svc, search) {
			continue
		}
		out = append(out, svc)
	}

	if eligibility.Evaluate(sub).HasActiveSubscription {
		sort.SliceStable(out, func(i, j int) bool {
			return eligibility.IsIncludedInPlan(sub, out[i].ID) &&
				!eligibility.IsIncludedInPlan(sub, out[j].ID)
		})
	}

	return out
}

func matchesSearch(svc models.Service, search string) bool {
	return strings.Contains(strings.ToLower(svc.Name), search) ||
		strings.Contains(strings.ToLower(svc.Description), search)
}
