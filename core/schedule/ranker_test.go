package schedule

import (
	"reflect"
	"testing"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

func TestRankFairnessOrder(t *testing.T) {
	in := []model.Candidate{
		newCand("Cara", model.Varsity, false, 4),
		newCand("Ann", model.Novice, false, 0),
		newCand("Bob", model.Varsity, true, 2),
	}
	ranked := Rank(in)
	got := []string{ranked[0].Name, ranked[1].Name, ranked[2].Name}
	want := []string{"Ann", "Bob", "Cara"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestRankTieBreaks(t *testing.T) {
	in := []model.Candidate{
		newCand("Zoe", model.Novice, false, 1),
		newCand("Amy", model.Varsity, false, 1),
	}
	ranked := Rank(in)
	if ranked[0].Name != "Amy" {
		t.Fatalf("expected name tie-break, got %s first", ranked[0].Name)
	}

	// Same shifts and name: the ID keeps the order total.
	a := newCand("Sam", model.Novice, false, 1)
	b := newCand("Sam", model.Varsity, false, 1)
	b.ID = "sam-2"
	ranked = Rank([]model.Candidate{b, a})
	if ranked[0].ID != "sam" || ranked[1].ID != "sam-2" {
		t.Fatalf("expected id tie-break, got %s then %s", ranked[0].ID, ranked[1].ID)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []model.Candidate{
		newCand("Cara", model.Varsity, false, 4),
		newCand("Ann", model.Novice, false, 0),
	}
	Rank(in)
	if in[0].Name != "Cara" {
		t.Fatalf("input slice was reordered")
	}
}

func TestRankDeterministic(t *testing.T) {
	a := []model.Candidate{
		newCand("Ann", model.Novice, false, 0),
		newCand("Bob", model.Varsity, true, 2),
		newCand("Cara", model.Varsity, false, 0),
	}
	b := []model.Candidate{a[2], a[0], a[1]}
	if !reflect.DeepEqual(Rank(a), Rank(b)) {
		t.Fatalf("rank order depends on input order")
	}
}
