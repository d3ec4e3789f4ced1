package vectortree

import (
	"math/rand"
	"testing"

	"github.com/BarisAlbayrakIEEE/VectorTree/pkg/must"
	"github.com/BarisAlbayrakIEEE/VectorTree/pkg/tt"
)

const (
	edgeSize  = 1024 // capacityForHeight(1); the largest size that fits in a height-1 tree
	largeSize = 1025 // one past edgeSize; forces a height-2 tree
)

func buildPushed(n int) Vector[int] {
	v := New[int]()
	for i := 0; i < n; i++ {
		v = must.OK1(v.PushBack(i))
	}
	return v
}

func TestPushBackAcrossHeightBoundary(t *testing.T) {
	for _, n := range []int{edgeSize, largeSize} {
		v := buildPushed(n)
		wantHeight := heightForSize(n)
		if v.Height() != wantHeight {
			t.Errorf("PushBack x%d: Height() = %d, want %d", n, v.Height(), wantHeight)
		}
		if v.Len() != n {
			t.Errorf("PushBack x%d: Len() = %d, want %d", n, v.Len(), n)
		}
		for _, i := range []int{0, n / 2, n - 1} {
			got := must.OK1(v.Get(i))
			if got != i {
				t.Errorf("PushBack x%d: Get(%d) = %d, want %d", n, i, got, i)
			}
		}
		if err := v.Validate(); err != nil {
			t.Errorf("PushBack x%d: Validate() = %v", n, err)
		}
	}
}

func TestPushBackCapacityExceeded(t *testing.T) {
	v := Vector[int]{size: capacityForHeight(MaxHeight), height: MaxHeight, root: wrapEmptyRoot[int](MaxHeight)}
	if _, err := v.PushBack(0); err != ErrCapacityExceeded {
		t.Errorf("PushBack at max capacity = %v, want ErrCapacityExceeded", err)
	}
}

func TestPopBackAcrossHeightBoundary(t *testing.T) {
	for _, n := range []int{largeSize, edgeSize + 1} {
		v := buildPushed(n)
		for i := n; i > 0; i-- {
			if v.Len() != i {
				t.Fatalf("before pop %d: Len() = %d, want %d", i, v.Len(), i)
			}
			var err error
			v, err = v.PopBack()
			must.OK(err)
			if err := v.Validate(); err != nil {
				t.Fatalf("after pop to size %d: Validate() = %v", i-1, err)
			}
		}
		if !v.IsEmpty() {
			t.Fatalf("after popping everything, IsEmpty() = false")
		}
		if _, err := v.PopBack(); err != ErrEmpty {
			t.Errorf("PopBack on empty vector = %v, want ErrEmpty", err)
		}
	}
}

func TestSetAtTable(t *testing.T) {
	base := buildPushed(40)
	tt.Test(t, tt.Fn("SetAt", func(i, val int) (int, error) {
		v, err := base.SetAt(i, val)
		if err != nil {
			return 0, err
		}
		return must.OK1(v.Get(i)), nil
	}), tt.Table{
		tt.Args(0, 100).Rets(100, nil),
		tt.Args(39, -1).Rets(-1, nil),
		tt.Args(35, 7).Rets(7, nil),
		tt.Args(-1, 0).Rets(0, tt.Any),
		tt.Args(40, 0).Rets(0, tt.Any),
	})
}

func TestSetAtDoesNotMutateOriginal(t *testing.T) {
	v := must.OK1(FromSlice([]int{1, 2, 3}))
	v2 := must.OK1(v.SetAt(1, 99))
	if got := must.OK1(v.Get(1)); got != 2 {
		t.Errorf("original mutated: Get(1) = %d, want 2", got)
	}
	if got := must.OK1(v2.Get(1)); got != 99 {
		t.Errorf("Get(1) on updated vector = %d, want 99", got)
	}
}

func TestEraseIsSwapAndPop(t *testing.T) {
	v := must.OK1(FromSlice([]int{0, 1, 2, 3, 4}))
	v2 := must.OK1(v.Erase(1))
	want := []int{0, 4, 2, 3}
	if v2.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v2.Len(), len(want))
	}
	for i, w := range want {
		if got := must.OK1(v2.Get(i)); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestEraseLastElementIsPlainPop(t *testing.T) {
	v := must.OK1(FromSlice([]int{0, 1, 2}))
	v2 := must.OK1(v.Erase(2))
	want := []int{0, 1}
	for i, w := range want {
		if got := must.OK1(v2.Get(i)); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestEraseRandomIndicesAcrossHeightBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{edgeSize, largeSize} {
		v := buildPushed(n)
		model := make([]int, n)
		for i := range model {
			model[i] = i
		}
		for v.Len() > 0 {
			i := rng.Intn(v.Len())
			var err error
			v, err = v.Erase(i)
			must.OK(err)
			last := len(model) - 1
			model[i] = model[last]
			model = model[:last]
			if err := v.Validate(); err != nil {
				t.Fatalf("n=%d: Validate() after erase = %v", n, err)
			}
		}
		for i, want := range model {
			got := must.OK1(v.Get(i))
			if got != want {
				t.Fatalf("n=%d: Get(%d) = %d, want %d", n, i, got, want)
			}
		}
	}
}

func TestEraseOutOfRange(t *testing.T) {
	v := must.OK1(FromSlice([]int{1, 2, 3}))
	if _, err := v.Erase(3); err == nil {
		t.Errorf("Erase(3) = nil error, want *OutOfRangeError")
	}
}

func TestInsertUnsupported(t *testing.T) {
	v := must.OK1(FromSlice([]int{1, 2, 3}))
	if _, err := v.Insert(0, 99); err != ErrUnsupported {
		t.Errorf("Insert() = %v, want ErrUnsupported", err)
	}
}

func TestForEach(t *testing.T) {
	v := must.OK1(FromSlice([]int{1, 2, 3}))
	doubled := v.ForEach(func(x int) int { return x * 2 })
	for i, want := range []int{2, 4, 6} {
		if got := must.OK1(doubled.Get(i)); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
	if got := must.OK1(v.Get(0)); got != 1 {
		t.Errorf("ForEach mutated the receiver: Get(0) = %d, want 1", got)
	}
}
