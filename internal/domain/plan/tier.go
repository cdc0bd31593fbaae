package plan

import (
	"sort"

	"github.com/EspacoVida/spa-portal/internal/models"
)

// ===============================
// Ordem total dos níveis
// ===============================

var tierRank = map[models.PlanTier]int{
	models.TierBronze: 0,
	models.TierSilver: 1,
	models.TierGold:   2,
}

// Rank devolve a posição ordinal do nível; desconhecido fica antes de tudo.
func Rank(t models.PlanTier) int {
	if r, ok := tierRank[t]; ok {
		return r
	}
	return -1
}

// SortByTier ordena BRONZE < SILVER < GOLD, estável.
func SortByTier(plans []models.Plan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return Rank(plans[i].Tier) < Rank(plans[j].Tier)
	})
}

// ===============================
// Classificação de troca de plano
// ===============================

type Change int

const (
	ChangeSame Change = iota
	ChangeUpgrade
	ChangeDowngrade
)

func ClassifyChange(from, to models.PlanTier) Change {
	switch {
	case Rank(to) > Rank(from):
		return ChangeUpgrade
	case Rank(to) < Rank(from):
		return ChangeDowngrade
	default:
		return ChangeSame
	}
}
