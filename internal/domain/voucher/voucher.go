package voucher

import (
	"errors"
	"time"

	"github.com/EspacoVida/spa-portal/internal/models"
)

// Checagem consultiva: evita oferecer na UI um voucher obviamente
// inválido. O servidor continua sendo a autoridade final na ativação.

type InvalidError struct {
	Code string
}

func (e InvalidError) Error() string {
	return e.Code
}

func ErrInvalid(code string) error {
	return InvalidError{Code: code}
}

func IsInvalid(err error, code string) bool {
	var ie InvalidError
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}

// CanActivate valida um voucher para uma reserva de serviço.
func CanActivate(v *models.Voucher, svc *models.Service, now time.Time) error {
	if v == nil || svc == nil {
		return ErrInvalid("voucher_not_applicable")
	}

	if v.Used {
		return ErrInvalid("voucher_used")
	}

	if v.ExpiresAt != nil && !v.ExpiresAt.After(now) {
		return ErrInvalid("voucher_expired")
	}

	switch v.Type {
	case models.VoucherFreeMonth:
		// Escopo de plano, não de serviço.
		return ErrInvalid("voucher_not_applicable")
	case models.VoucherFreeTreatment, models.VoucherDiscount:
		if v.AnyService {
			return nil
		}
		if v.ServiceID != nil && *v.ServiceID == svc.ID {
			return nil
		}
		return ErrInvalid("voucher_not_applicable")
	default:
		return ErrInvalid("voucher_not_applicable")
	}
}

// CanActivateForPlan valida um voucher de mês grátis para um plano.
func CanActivateForPlan(v *models.Voucher, planID uint, now time.Time) error {
	if v == nil {
		return ErrInvalid("voucher_not_applicable")
	}
	if v.Used {
		return ErrInvalid("voucher_used")
	}
	if v.ExpiresAt != nil && !v.ExpiresAt.After(now) {
		return ErrInvalid("voucher_expired")
	}
	if v.Type != models.VoucherFreeMonth {
		return ErrInvalid("voucher_not_applicable")
	}
	if v.PlanID != nil && *v.PlanID != planID {
		return ErrInvalid("voucher_not_applicable")
	}
	return nil
}
