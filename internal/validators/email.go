package validators

import "strings"

// IsEmailValid faz checagem sintática apenas. Resolução de domínio é do
// backend; um core de navegador não pode fazer lookup de MX.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	return true
}
