package ledgerservice

import "sync"

// accountLocks hands out one mutex per account number so concurrent debits
// and credits on the same account never read the same starting balance.
type accountLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{
		locks: make(map[int64]*sync.Mutex),
	}
}

func (l *accountLocks) get(accountNumber int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[accountNumber]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[accountNumber] = lock
	}
	return lock
}

func (l *accountLocks) lock(accountNumber int64) func() {
	lock := l.get(accountNumber)
	lock.Lock()
	return lock.Unlock
}

// lockPair acquires both account locks in ascending account-number order to
// avoid deadlock between two opposite transfers.
func (l *accountLocks) lockPair(a, b int64) func() {
	if a == b {
		return l.lock(a)
	}
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	unlockFirst := l.lock(first)
	unlockSecond := l.lock(second)
	return func() {
		unlockSecond()
		unlockFirst()
	}
}
