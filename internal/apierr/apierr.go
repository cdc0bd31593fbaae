package apierr

import (
	"errors"
	"fmt"
	"strings"
)

// RemoteError é a falha única do cliente remoto: carrega o código de
// máquina do envelope, a mensagem humana e o status HTTP observado.
type RemoteError struct {
	Code    string
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	if e.Message != "" && e.Message != e.Code {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func New(status int, code, message string) *RemoteError {
	return &RemoteError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// IsNotFound reconhece ausência esperada (ex.: usuário ainda sem
// assinatura). Não é estado de erro para os stores.
func IsNotFound(err error) bool {
	var re *RemoteError
	if !errors.As(err, &re) {
		return false
	}
	if re.Status == 404 {
		return true
	}
	return re.Code == "not_found" || strings.HasSuffix(re.Code, "_not_found")
}

// IsValidation reconhece mutações rejeitadas pelo servidor
// (ex.: assinar um plano que o usuário já possui).
func IsValidation(err error) bool {
	var re *RemoteError
	if !errors.As(err, &re) {
		return false
	}
	if IsNotFound(err) {
		return false
	}
	return re.Status == 400 || re.Status == 422
}

func IsCode(err error, code string) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// Message extrai a mensagem humana de qualquer erro do cliente remoto.
func Message(err error) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
