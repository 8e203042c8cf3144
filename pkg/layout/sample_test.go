package layout

import (
	"fmt"
	"reflect"
	"testing"
)

func names(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("img%03d.jpg", i)
	}
	return items
}

func TestSampleNoOpWhenFits(t *testing.T) {
	items := names(5)

	got := Sample(items, 5)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("Sample(n=5, k=5) = %v, want unchanged input", got)
	}

	got = Sample(items, 10)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("Sample(n=5, k=10) = %v, want unchanged input", got)
	}
}

func TestSampleKeepsFirstAndLast(t *testing.T) {
	for _, n := range []int{5, 10, 37, 100, 500} {
		for _, k := range []int{2, 3, 5, 12} {
			if k >= n {
				continue
			}
			t.Run(fmt.Sprintf("n=%d,k=%d", n, k), func(t *testing.T) {
				items := names(n)
				got := Sample(items, k)

				if len(got) != k {
					t.Fatalf("len = %d, want %d", len(got), k)
				}
				if got[0] != items[0] {
					t.Errorf("first item = %q, want %q", got[0], items[0])
				}
				if got[len(got)-1] != items[n-1] {
					t.Errorf("last item = %q, want %q", got[len(got)-1], items[n-1])
				}
			})
		}
	}
}

func TestSamplePreservesOrder(t *testing.T) {
	items := names(50)
	got := Sample(items, 10)

	prev := -1
	for _, s := range got {
		var idx int
		fmt.Sscanf(s, "img%03d.jpg", &idx)
		if idx < prev {
			t.Fatalf("sample out of order: %v", got)
		}
		prev = idx
	}
}

func TestSampleKnownSelection(t *testing.T) {
	// n=10, k=4: interior step is 4.0, picking indices 3 and 7.
	got := Sample(names(10), 4)
	want := []string{"img000.jpg", "img003.jpg", "img007.jpg", "img009.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sample(10, 4) = %v, want %v", got, want)
	}
}

func TestSampleDegenerateCap(t *testing.T) {
	items := names(10)

	got := Sample(items, 1)
	if !reflect.DeepEqual(got, items[:1]) {
		t.Errorf("Sample(10, 1) = %v, want first item only", got)
	}

	got = Sample(items, 0)
	if len(got) != 0 {
		t.Errorf("Sample(10, 0) = %v, want empty", got)
	}
}
