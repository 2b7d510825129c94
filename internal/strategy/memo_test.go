package strategy

import (
	"math"
	"reflect"
	"sync"
	"testing"
)

type countingObserver struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (o *countingObserver) MemoHit() {
	o.mu.Lock()
	o.hits++
	o.mu.Unlock()
}

func (o *countingObserver) MemoMiss() {
	o.mu.Lock()
	o.misses++
	o.mu.Unlock()
}

func TestMemo_HitReturnsSameResult(t *testing.T) {
	obs := &countingObserver{}
	memo, err := NewMemo(8, obs)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	params := Parameters{K: 4, P: 1, Q: -0.5}
	first := memo.Evaluate(params)
	second := memo.Evaluate(params)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result %+v differs from first %+v", second, first)
	}
	if !reflect.DeepEqual(first, Evaluate(params)) {
		t.Errorf("memo result differs from direct evaluation")
	}
	if obs.hits != 1 || obs.misses != 1 {
		t.Errorf("hits=%d misses=%d, want 1 and 1", obs.hits, obs.misses)
	}
	if memo.Len() != 1 {
		t.Errorf("Len() = %d, want 1", memo.Len())
	}
}

func TestMemo_CallerCannotCorruptCache(t *testing.T) {
	memo, err := NewMemo(8, nil)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	params := Parameters{K: 3, P: 1, Q: -1}
	res := memo.Evaluate(params)
	res.Table[0] = 42

	again := memo.Evaluate(params)
	if again.Table[0] == 42 {
		t.Error("mutating a returned table changed the cached entry")
	}
}

func TestMemo_Eviction(t *testing.T) {
	obs := &countingObserver{}
	memo, err := NewMemo(2, obs)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	memo.Evaluate(Parameters{K: 2, P: 1, Q: -1})
	memo.Evaluate(Parameters{K: 3, P: 1, Q: -1})
	memo.Evaluate(Parameters{K: 4, P: 1, Q: -1})

	if memo.Len() != 2 {
		t.Errorf("Len() = %d, want 2", memo.Len())
	}

	// Oldest entry was evicted, so this is a miss.
	memo.Evaluate(Parameters{K: 2, P: 1, Q: -1})
	if obs.misses != 4 {
		t.Errorf("misses = %d, want 4", obs.misses)
	}
}

func TestMemo_Disabled(t *testing.T) {
	obs := &countingObserver{}
	memo, err := NewMemo(0, obs)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	params := Parameters{K: 5, P: 2, Q: -0.5}
	got := memo.Evaluate(params)
	memo.Evaluate(params)

	if !reflect.DeepEqual(got, Evaluate(params)) {
		t.Errorf("disabled memo result differs from direct evaluation")
	}
	if obs.hits != 0 || obs.misses != 0 {
		t.Errorf("disabled memo reported hits=%d misses=%d", obs.hits, obs.misses)
	}
	if memo.Len() != 0 {
		t.Errorf("Len() = %d, want 0", memo.Len())
	}
}

func TestMemo_ConcurrentUse(t *testing.T) {
	memo, err := NewMemo(16, &countingObserver{})
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			params := Parameters{K: 2 + i%8, P: 1, Q: -0.5}
			res := memo.Evaluate(params)
			if len(res.Table) != params.K {
				t.Errorf("len(table) = %d, want %d", len(res.Table), params.K)
			}
		}(i)
	}
	wg.Wait()
}

func TestMemo_EchoesCallerSignedZero(t *testing.T) {
	obs := &countingObserver{}
	memo, err := NewMemo(8, obs)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	memo.Evaluate(Parameters{K: 4, P: 1, Q: 0})
	res := memo.Evaluate(Parameters{K: 4, P: 1, Q: math.Copysign(0, -1)})

	if obs.hits != 1 {
		t.Fatalf("hits = %d, want 1 (signed zeros share a key)", obs.hits)
	}
	if !math.Signbit(res.Params.Q) {
		t.Errorf("Params.Q = %v, want the caller's -0", res.Params.Q)
	}
}
