package rank

import (
	"math/rand"
	"sort"
	"testing"
)

type scored struct {
	id    string
	score float64
}

func byScore(s scored) float64 { return s.score }

func ids(items []scored) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func TestPartition(t *testing.T) {
	items := []scored{
		{"a", 0.5}, {"b", 0.2}, {"c", 0.9}, {"d", 0.5}, {"e", 0.1}, {"f", 0.7},
	}

	less, equal, greater := Partition(items, 0.5, byScore)

	if got := len(less) + len(equal) + len(greater); got != len(items) {
		t.Fatalf("bucket sizes sum to %d, want %d", got, len(items))
	}

	tests := []struct {
		name   string
		bucket []scored
		want   []string
	}{
		{"less", less, []string{"b", "e"}},
		{"equal", equal, []string{"a", "d"}},
		{"greater", greater, []string{"c", "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.bucket)
			if len(got) != len(tt.want) {
				t.Fatalf("%s = %v, want %v", tt.name, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("%s[%d] = %q, want %q", tt.name, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPartition_Empty(t *testing.T) {
	less, equal, greater := Partition(nil, 0.5, byScore)
	if len(less)+len(equal)+len(greater) != 0 {
		t.Errorf("Partition(nil) returned items: %v %v %v", less, equal, greater)
	}
}

func TestQuickSort_Empty(t *testing.T) {
	got := QuickSort([]scored{}, byScore)
	if got == nil || len(got) != 0 {
		t.Errorf("QuickSort([]) = %#v, want empty non-nil slice", got)
	}
}

func TestQuickSort_TiesKeepInputOrder(t *testing.T) {
	items := []scored{{"xy", 0.5}, {"ab", 0.2}, {"pq", 0.5}}

	got := ids(QuickSort(items, byScore))
	want := []string{"ab", "xy", "pq"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("QuickSort() = %v, want %v", got, want)
		}
	}
}

func TestQuickSort_DoesNotModifyInput(t *testing.T) {
	items := []scored{{"a", 0.9}, {"b", 0.1}, {"c", 0.5}}
	QuickSort(items, byScore)
	if items[0].id != "a" || items[1].id != "b" || items[2].id != "c" {
		t.Errorf("input modified: %v", ids(items))
	}
}

func TestQuickSort_SortedInput(t *testing.T) {
	// Worst case for a first-element pivot.
	const n = 2000
	items := make([]scored, n)
	for i := range items {
		items[i] = scored{id: "x", score: float64(i)}
	}
	got := QuickSort(items, byScore)
	for i := range got {
		if got[i].score != float64(i) {
			t.Fatalf("QuickSort()[%d] = %v, want %d", i, got[i].score, i)
		}
	}
}

func TestQuickSort_MatchesStableSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(200)
		items := make([]scored, n)
		for i := range items {
			// Few distinct values so ties are common.
			items[i] = scored{id: string(rune('A'+i%26)) + string(rune('a'+i/26)), score: float64(r.Intn(10)) / 10}
		}

		want := make([]scored, n)
		copy(want, items)
		sort.SliceStable(want, func(i, j int) bool { return want[i].score < want[j].score })

		got := QuickSort(items, byScore)
		if len(got) != n {
			t.Fatalf("trial %d: len = %d, want %d", trial, len(got), n)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("trial %d: QuickSort()[%d] = %v, want %v", trial, i, got[i], want[i])
			}
		}
	}
}
