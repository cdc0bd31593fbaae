package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EspacoVida/spa-portal/internal/apierr"
	"github.com/EspacoVida/spa-portal/internal/models"
)

// Session é o valor de sessão injetado explicitamente no cliente e nos
// stores — nada de singleton de módulo. Clear é o gancho de logout: zera
// a credencial e dispara o teardown dos stores registrados.
type Session struct {
	mu sync.RWMutex

	userID string
	role   models.Role
	token  string

	onClear []func()
}

// FromToken extrai usuário e papel da credencial ambiente. O parse é sem
// verificação de assinatura: validar o token é papel do provedor de
// identidade e do backend, o cliente só lê as claims.
func FromToken(token string) (*Session, error) {
	if token == "" {
		return &Session{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, apierr.New(0, "invalid_credential", "Credencial inválida.")
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, apierr.New(0, "invalid_credential_payload", "Credencial sem identificação de usuário.")
	}

	role := models.RoleClient
	if r, _ := claims["role"].(string); r != "" {
		role = models.Role(r)
	}

	return &Session{
		userID: userID,
		role:   role,
		token:  token,
	}, nil
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.UserID() != ""
}

// OnClear registra teardown executado no logout (os stores usam para
// limpar seus caches).
func (s *Session) OnClear(fn func()) {
	s.mu.Lock()
	s.onClear = append(s.onClear, fn)
	s.mu.Unlock()
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.userID = ""
	s.role = ""
	s.token = ""
	hooks := make([]func(), len(s.onClear))
	copy(hooks, s.onClear)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// ======================================================
// TRANSPORT (credencial ambiente)
// ======================================================

type bearerTransport struct {
	sess *Session
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.sess.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}

// HTTPClient devolve um *http.Client que anexa a credencial da sessão em
// toda requisição. É assim que o colaborador de auth injeta o header —
// o cliente remoto em si não sabe de autenticação.
func (s *Session) HTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &bearerTransport{
			sess: s,
			base: http.DefaultTransport,
		},
	}
}
