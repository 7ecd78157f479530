package navhist

// DefaultHistoryCapacity is the default maximum number of entries
// retained per jump list and change list before front eviction.
const DefaultHistoryCapacity = 100

// Option configures a Manager.
type Option func(*Manager)

// WithHistoryCapacity sets the maximum entries retained per jump list
// and change list instance. Non-positive values select the default.
// The capacity is fixed at construction and applies to every list the
// manager creates.
func WithHistoryCapacity(n int) Option {
	return func(m *Manager) {
		if n <= 0 {
			n = DefaultHistoryCapacity
		}
		m.capacity = n
	}
}

// WithLogger sets the manager's logger. A nil logger is ignored.
func WithLogger(l *Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}
