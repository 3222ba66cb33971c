package correlation

import "sync"

// memo holds a value that is computed at most once. Presence is tracked by the
// sync.Once, never by the value itself, so zero results stay cached.
type memo[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.once.Do(func() {
		m.value, m.err = compute()
	})
	return m.value, m.err
}
