package analytics

import (
	"reflect"
	"testing"
)

func TestAccumulator_AddAndCount(t *testing.T) {
	acc := NewAccumulator()

	acc.Add("gopher", 2)
	acc.Add("gopher", 3)
	acc.Add("turtle", 1)

	if got := acc.Count("gopher"); got != 5 {
		t.Errorf("Count(\"gopher\") = %d, want 5", got)
	}
	if got := acc.Count("turtle"); got != 1 {
		t.Errorf("Count(\"turtle\") = %d, want 1", got)
	}
	if got := acc.Count("absent"); got != 0 {
		t.Errorf("Count(\"absent\") = %d, want 0", got)
	}
	if got := acc.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestAccumulator_WordsSorted(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("zebra", 1)
	acc.Add("ant", 1)
	acc.Add("moose", 1)

	want := []string{"ant", "moose", "zebra"}
	if got := acc.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestAccumulator_Top(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("alpha", 3)
	acc.Add("beta", 7)
	acc.Add("gamma", 3)
	acc.Add("delta", 1)

	got := acc.Top(3)
	want := []WordCount{
		{Word: "beta", Count: 7},
		{Word: "alpha", Count: 3},
		{Word: "gamma", Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top(3) = %v, want %v", got, want)
	}
}

func TestAccumulator_TopMoreThanAvailable(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("solo", 4)

	got := acc.Top(10)
	if len(got) != 1 {
		t.Fatalf("Top(10) returned %d entries, want 1", len(got))
	}
	if got[0].Word != "solo" || got[0].Count != 4 {
		t.Errorf("Top(10)[0] = %v, want {solo 4}", got[0])
	}
}

func TestWordCount_String(t *testing.T) {
	wc := WordCount{Word: "learning", Count: 1153}
	if got := wc.String(); got != "learning:1153" {
		t.Errorf("String() = %q, want %q", got, "learning:1153")
	}
}
