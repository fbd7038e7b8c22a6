package servobus

import "sync"

// Mock is a recording writer for tests and hardware-less runs. It
// remembers the last angle per servo and can inject write failures.
type Mock struct {
	mu     sync.Mutex
	last   map[int]float64
	writes int
	fail   map[int]error
}

// NewMock creates an empty mock writer.
func NewMock() *Mock {
	return &Mock{
		last: make(map[int]float64),
		fail: make(map[int]error),
	}
}

// Write records the angle, or returns the injected error for this ID.
func (m *Mock) Write(id int, angle float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.fail[id]; ok {
		return err
	}
	m.last[id] = angle
	m.writes++
	return nil
}

// FailWith makes writes to the given servo return err.
func (m *Mock) FailWith(id int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail[id] = err
}

// Last returns the last angle written to a servo.
func (m *Mock) Last(id int) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	angle, ok := m.last[id]
	return angle, ok
}

// Writes returns the number of successful writes.
func (m *Mock) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
