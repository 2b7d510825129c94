package strategy

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// MemoObserver is notified of cache hits and misses.
type MemoObserver interface {
	MemoHit()
	MemoMiss()
}

// Memo caches engine results keyed by parameters. Since the engine is
// deterministic, a cached result is always identical to a fresh one.
type Memo struct {
	cache    *lru.Cache
	capacity int
	observer MemoObserver
}

// NewMemo creates a memo holding up to size results. A size <= 0 disables
// caching and every call goes straight to the engine.
func NewMemo(size int, observer MemoObserver) (*Memo, error) {
	m := &Memo{observer: observer}
	if size <= 0 {
		return m, nil
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	m.cache = cache
	m.capacity = size
	return m, nil
}

// Evaluate returns the result for params, computing it on a miss.
// The returned table is a copy the caller may modify, and Params is always
// the caller's own value: keys compare +0 and -0 as equal.
func (m *Memo) Evaluate(params Parameters) Result {
	if m.cache == nil {
		return Evaluate(params)
	}

	if v, ok := m.cache.Get(params); ok {
		if m.observer != nil {
			m.observer.MemoHit()
		}
		return copyResult(v.(Result), params)
	}

	if m.observer != nil {
		m.observer.MemoMiss()
	}
	res := Evaluate(params)
	m.cache.Add(params, res)
	return copyResult(res, params)
}

// Len reports the number of cached results.
func (m *Memo) Len() int {
	if m.cache == nil {
		return 0
	}
	return m.cache.Len()
}

func copyResult(r Result, params Parameters) Result {
	r.Params = params
	table := make([]float64, len(r.Table))
	copy(table, r.Table)
	r.Table = table
	return r
}
