package progress

import "sync"

// Locker serializes progress read-modify-write cycles per student.
// Concurrent sessions for different students proceed independently;
// two sessions for the same student queue up so neither save is lost.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocker creates an empty Locker.
func NewLocker() *Locker {
	return &Locker{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the lock for studentID, creating it on first use.
func (l *Locker) Lock(studentID string) {
	l.forStudent(studentID).Lock()
}

// Unlock releases the lock for studentID.
func (l *Locker) Unlock(studentID string) {
	l.forStudent(studentID).Unlock()
}

func (l *Locker) forStudent(studentID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[studentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[studentID] = m
	}
	return m
}
