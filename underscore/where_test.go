package underscore_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore-utils/underscore"
)

func users() *underscore.Seq[map[string]any] {
	return underscore.New(
		map[string]any{"name": "moe", "role": "admin", "age": 40, "active": true},
		map[string]any{"name": "larry", "role": "user", "age": 50, "active": false},
		map[string]any{"name": "curly", "role": "admin", "age": 60, "active": true},
	)
}

func TestWhere(t *testing.T) {
	got := underscore.Where(users(), map[string]any{"role": "admin"})
	if got.Count() != 2 {
		t.Fatalf("Where matched %d elements; want 2", got.Count())
	}
	names := underscore.Pluck[any](got, "name").All()
	if names[0] != "moe" || names[1] != "curly" {
		t.Fatalf("Where order: %v", names)
	}
}

func TestWhereMultipleProps(t *testing.T) {
	got := underscore.Where(users(), map[string]any{"role": "admin", "age": 60})
	if got.Count() != 1 {
		t.Fatalf("Where matched %d elements; want 1", got.Count())
	}
	if name, _ := got.Get(0); name["name"] != "curly" {
		t.Fatalf("Where matched %v", name)
	}
}

func TestWhereMissingKeyNeverMatches(t *testing.T) {
	got := underscore.Where(users(), map[string]any{"salary": 100})
	if got.Count() != 0 {
		t.Fatalf("Where on a missing key matched %d elements", got.Count())
	}
}

func TestWhereStrictTypeEquality(t *testing.T) {
	// age is stored as int; a float64 requirement must not match.
	got := underscore.Where(users(), map[string]any{"age": float64(40)})
	if got.Count() != 0 {
		t.Fatal("Where should not coerce between numeric types")
	}
}

// A candidate field holding a falsy value never satisfies a requirement,
// even when the required value is the same falsy value.
func TestWhereFalsyCandidateNeverMatches(t *testing.T) {
	rows := underscore.New(
		map[string]any{"n": 0, "s": "", "b": false},
		map[string]any{"n": 1, "s": "x", "b": true},
	)
	for _, props := range []map[string]any{
		{"n": 0},
		{"s": ""},
		{"b": false},
	} {
		if got := underscore.Where(rows, props); got.Count() != 0 {
			t.Fatalf("Where(%v) matched %d elements; falsy fields must never match", props, got.Count())
		}
	}
}

func TestFindWhere(t *testing.T) {
	got, ok := underscore.FindWhere(users(), map[string]any{"role": "admin"})
	if !ok || got["name"] != "moe" {
		t.Fatalf("FindWhere = %v, %v; want the first admin (moe)", got, ok)
	}
	_, ok = underscore.FindWhere(users(), map[string]any{"role": "ghost"})
	if ok {
		t.Fatal("FindWhere should report false when nothing matches")
	}
}

func TestFindWhereReturnsFirstMatch(t *testing.T) {
	// Both moe and curly are admins; FindWhere must stop at moe.
	got, ok := underscore.FindWhere(users(), map[string]any{"active": true})
	if !ok || got["name"] != "moe" {
		t.Fatalf("FindWhere = %v, %v; want moe", got, ok)
	}
}

func TestPluck(t *testing.T) {
	names := underscore.Pluck[any](users(), "name").All()
	if len(names) != 3 || names[0] != "moe" || names[2] != "curly" {
		t.Fatalf("Pluck = %v", names)
	}
}

func TestPluckMissingKeyYieldsZero(t *testing.T) {
	rows := underscore.New(
		map[string]int{"a": 1},
		map[string]int{"b": 2},
	)
	got := underscore.Pluck[int](rows, "a").All()
	assertSlice(t, got, []int{1, 0})
}

func TestSortByKeyNumeric(t *testing.T) {
	got := underscore.SortByKey(users(), "age")
	ages := underscore.Pluck[any](got, "age").All()
	if ages[0] != 40 || ages[1] != 50 || ages[2] != 60 {
		t.Fatalf("SortByKey(age) = %v", ages)
	}
}

func TestSortByKeyString(t *testing.T) {
	got := underscore.SortByKey(users(), "name")
	names := underscore.Pluck[any](got, "name").All()
	if names[0] != "curly" || names[1] != "larry" || names[2] != "moe" {
		t.Fatalf("SortByKey(name) = %v", names)
	}
}

func TestSortByKeyMixedWidthsCompareNumerically(t *testing.T) {
	rows := underscore.New(
		map[string]any{"v": int64(3)},
		map[string]any{"v": 1},
		map[string]any{"v": float64(2)},
	)
	got := underscore.Pluck[any](underscore.SortByKey(rows, "v"), "v").All()
	if got[0] != 1 || got[1] != float64(2) || got[2] != int64(3) {
		t.Fatalf("SortByKey mixed widths = %v", got)
	}
}

func TestSortByKeyStable(t *testing.T) {
	rows := underscore.New(
		map[string]any{"k": 1, "t": "a"},
		map[string]any{"k": 1, "t": "b"},
	)
	got := underscore.SortByKey(rows, "k").All()
	if got[0]["t"] != "a" || got[1]["t"] != "b" {
		t.Fatalf("SortByKey not stable: %v", got)
	}
}
