package booking

import "errors"

// Erros de negócio do fluxo de reserva, no mesmo padrão de código de
// máquina usado no resto do core.

type FlowError struct {
	Code    string
	Message string
}

func (e FlowError) Error() string {
	return e.Code
}

func ErrFlow(code, message string) error {
	return FlowError{Code: code, Message: message}
}

func IsFlow(err error, code string) bool {
	var fe FlowError
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}
