package ringbuffer

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/eapache/queue"
)

// TestPushShiftMatchesQueue drives Push/Shift randomly and compares every
// result against eapache/queue used as a reference FIFO.
func TestPushShiftMatchesQueue(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r := newTestRing(t, 16, false, false)
		model := queue.New()

		for i := 0; i < 5000; i++ {
			if rng.Intn(2) == 0 {
				val := rng.Intn(100000)
				_, err := r.Push(val)
				if model.Length() < 16 {
					if err != nil {
						t.Fatalf("seed %d op %d: Push: %v", seed, i, err)
					}
					model.Add(val)
				} else if err == nil {
					t.Fatalf("seed %d op %d: Push into full buffer succeeded", seed, i)
				}
			} else {
				v, ok, err := r.Shift()
				if model.Length() == 0 {
					if err == nil {
						t.Fatalf("seed %d op %d: Shift on empty buffer succeeded", seed, i)
					}
				} else {
					want := model.Remove().(int)
					if err != nil || !ok || v != want {
						t.Fatalf("seed %d op %d: Shift got %d ok=%v err=%v, want %d", seed, i, v, ok, err, want)
					}
				}
			}
			if r.Size() != model.Length() {
				t.Fatalf("seed %d op %d: size %d, model %d", seed, i, r.Size(), model.Length())
			}
		}
	}
}

// TestRandomOpsMatchSliceModel exercises all four ends with both policies
// enabled against a plain slice deque.
func TestRandomOpsMatchSliceModel(t *testing.T) {
	const capacity = 7
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r := newTestRing(t, capacity, true, true)
		var model []int

		for i := 0; i < 3000; i++ {
			val := rng.Intn(1000)
			switch rng.Intn(4) {
			case 0:
				r.Push(val)
				model = append(model, val)
				if len(model) > capacity {
					model = model[1:]
				}
			case 1:
				r.Enqueue(val)
				model = append([]int{val}, model...)
				if len(model) > capacity {
					model = model[:capacity]
				}
			case 2:
				v, ok, err := r.Shift()
				if err != nil {
					t.Fatalf("seed %d op %d: Shift: %v", seed, i, err)
				}
				if len(model) == 0 {
					if ok {
						t.Fatalf("seed %d op %d: Shift on empty returned a value", seed, i)
					}
					break
				}
				if !ok || v != model[0] {
					t.Fatalf("seed %d op %d: Shift got %d, want %d", seed, i, v, model[0])
				}
				model = model[1:]
			case 3:
				v, ok, err := r.Pop()
				if err != nil {
					t.Fatalf("seed %d op %d: Pop: %v", seed, i, err)
				}
				if len(model) == 0 {
					if ok {
						t.Fatalf("seed %d op %d: Pop on empty returned a value", seed, i)
					}
					break
				}
				if !ok || v != model[len(model)-1] {
					t.Fatalf("seed %d op %d: Pop got %d, want %d", seed, i, v, model[len(model)-1])
				}
				model = model[:len(model)-1]
			}
			if got := r.ToSlice(); !slices.Equal(got, model) {
				t.Fatalf("seed %d op %d: contents %v, model %v", seed, i, got, model)
			}
			if r.Size()+r.FreeSpace() != capacity {
				t.Fatalf("seed %d op %d: size+free != capacity", seed, i)
			}
		}
	}
}
