package store

// ======================================================
// Máquina de estados compartilhada pelos stores de entidade
// ======================================================
//
// Idle → Loading → Loaded(entidade|ausente) | Failed(erro)
//
// "Ausente" é estado terminal válido (usuário ainda não tem a entidade),
// nunca erro. Mutações refazem o fetch completo em vez de remendar o
// cache local: os contadores derivados (uso do mês, status) são do
// servidor e o cache não pode divergir deles.

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// fence é o número de sequência monotônico por store: todo fetch pega um
// número novo e só a resolução mais recente emitida pode aplicar
// resultado. Resoluções fora de ordem são descartadas. O dono guarda o
// próprio mutex; fence não tranca nada sozinho.
type fence struct {
	seq uint64
}

func (f *fence) next() uint64 {
	f.seq++
	return f.seq
}

func (f *fence) latest(seq uint64) bool {
	return f.seq == seq
}

// bump invalida tudo que está em voo (teardown de logout).
func (f *fence) bump() {
	f.seq++
}
