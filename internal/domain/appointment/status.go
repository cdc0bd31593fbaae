package appointment

// ===============================
// Appointment Status (observado)
// ===============================

// O cliente nunca calcula transições: PENDING→CONFIRMED etc. acontecem
// no servidor e aqui são apenas observadas.

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
	StatusNoShow    Status = "NO_SHOW"
)

// IsOpen indica agendamento ainda por acontecer (para agrupar na agenda).
func IsOpen(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCanceled || s == StatusNoShow
}

// ===============================
// Origem (como a reserva foi paga)
// ===============================

type Origin string

const (
	OriginSubscription Origin = "SUBSCRIPTION"
	OriginSingle       Origin = "SINGLE"
	OriginVoucher      Origin = "VOUCHER"
	OriginAdminCreated Origin = "ADMIN_CREATED"
)
