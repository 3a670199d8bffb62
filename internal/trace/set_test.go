package trace

import (
	"reflect"
	"testing"
)

func TestNewSet_Index(t *testing.T) {
	records := []Record{
		{Test: "Q2", Approach: "B", Answer: 1, Time: 3},
		{Test: "Q1", Approach: "B", Answer: 2, Time: 2},
		{Test: "Q1", Approach: "B", Answer: 1, Time: 1},
		{Test: "Q1", Approach: "A", Answer: 1, Time: 4},
	}
	set := NewSet(records)

	if set.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", set.Len())
	}
	if got := set.Tests(); !reflect.DeepEqual(got, []string{"Q1", "Q2"}) {
		t.Fatalf("unexpected tests %v", got)
	}
	if got := set.Approaches("Q1"); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("unexpected approaches %v", got)
	}
	if got := set.Approaches("Q9"); len(got) != 0 {
		t.Fatalf("expected no approaches for unknown test, got %v", got)
	}

	points := set.Points("Q1", "B")
	if len(points) != 2 || points[0].Answer != 1 || points[1].Answer != 2 {
		t.Fatalf("expected points sorted by time, got %+v", points)
	}

	maxTime, ok := set.MaxTime("Q1")
	if !ok || maxTime != 4 {
		t.Fatalf("expected max time 4, got %v (%v)", maxTime, ok)
	}
	if _, ok := set.MaxTime("Q9"); ok {
		t.Fatal("expected no max time for unknown test")
	}

	if !reflect.DeepEqual(set.Records(), records) {
		t.Fatalf("records should keep load order, got %+v", set.Records())
	}
}

func TestNewSet_DoesNotAliasInput(t *testing.T) {
	records := []Record{{Test: "Q1", Approach: "A", Answer: 1, Time: 1}}
	set := NewSet(records)
	records[0].Time = 99

	if got := set.Points("Q1", "A")[0].Time; got != 1 {
		t.Fatalf("points alias input: time %v", got)
	}
	if got := set.Records()[0].Time; got != 1 {
		t.Fatalf("records alias input: time %v", got)
	}
}

func TestNilSet(t *testing.T) {
	var set *Set
	if set.Len() != 0 {
		t.Fatalf("expected zero length, got %d", set.Len())
	}
	if set.Tests() != nil {
		t.Fatalf("expected nil tests, got %v", set.Tests())
	}
	if set.Points("Q1", "A") != nil {
		t.Fatalf("expected nil points, got %v", set.Points("Q1", "A"))
	}
}
