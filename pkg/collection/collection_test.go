package collection_test

import (
	"testing"

	"github.com/shashiranjanraj/quickstationery/pkg/collection"
)

func TestMapAndFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}

	doubled := collection.Map(in, func(n int) int { return n * 2 })
	if len(doubled) != 4 || doubled[3] != 8 {
		t.Errorf("Map: got %v", doubled)
	}

	even := collection.Filter(in, func(n int) bool { return n%2 == 0 })
	if len(even) != 2 || even[0] != 2 || even[1] != 4 {
		t.Errorf("Filter: got %v", even)
	}

	odd := collection.Reject(in, func(n int) bool { return n%2 == 0 })
	if len(odd) != 2 || odd[0] != 1 {
		t.Errorf("Reject: got %v", odd)
	}
}

func TestFirstAndContains(t *testing.T) {
	in := []string{"a", "bb", "ccc"}

	v, ok := collection.First(in, func(s string) bool { return len(s) == 2 })
	if !ok || v != "bb" {
		t.Errorf("First: got %q, ok=%v", v, ok)
	}

	if _, ok := collection.First(in, func(s string) bool { return len(s) > 3 }); ok {
		t.Error("First: expected no match")
	}

	if !collection.Contains(in, func(s string) bool { return s == "a" }) {
		t.Error("Contains: expected match")
	}
}

func TestUniquePreservesOrder(t *testing.T) {
	got := collection.Unique([]string{"pens", "art", "pens", "supplies", "art"})
	want := []string{"pens", "art", "supplies"}
	if len(got) != len(want) {
		t.Fatalf("Unique: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Unique[%d]: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestReduceAndSumInt(t *testing.T) {
	type line struct{ price, qty int }
	lines := []line{{59, 2}, {99, 1}}

	total := collection.SumInt(lines, func(l line) int { return l.price * l.qty })
	if total != 217 {
		t.Errorf("SumInt: got %d want 217", total)
	}

	count := collection.Reduce(lines, 0, func(acc int, l line) int { return acc + l.qty })
	if count != 3 {
		t.Errorf("Reduce: got %d want 3", count)
	}
}
