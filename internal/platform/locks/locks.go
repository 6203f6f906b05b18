package locks

import "sync"

// Manager reparte un mutex por clave (típicamente el owner_user_id).
// Los locks se crean perezosamente y nunca se limpian: la cardinalidad
// es la de usuarios activos del proceso, acotada para este servicio.
type Manager struct {
	mu    sync.Mutex
	byKey map[string]*sync.Mutex
}

func NewManager() *Manager {
	return &Manager{byKey: make(map[string]*sync.Mutex)}
}

func (m *Manager) get(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.byKey[key]
	if !ok {
		l = &sync.Mutex{}
		m.byKey[key] = l
	}
	return l
}

// WithLock ejecuta fn dentro de la sección crítica de la clave.
// No es reentrante: fn no debe volver a pedir la misma clave.
func (m *Manager) WithLock(key string, fn func() error) error {
	l := m.get(key)
	l.Lock()
	defer l.Unlock()
	return fn()
}
