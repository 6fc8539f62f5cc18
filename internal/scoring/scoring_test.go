package scoring

import (
	"slices"
	"testing"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/gamification"
)

func TestGradeQuestion(t *testing.T) {
	q := catalog.Question{Prompt: "p", Answers: []string{"a", "b", "c", "d"}, CorrectIndex: 1}

	if !GradeQuestion(q, 1) {
		t.Error("index 1 should be correct")
	}
	for _, i := range []int{0, 2, 3, -1, 9} {
		if GradeQuestion(q, i) {
			t.Errorf("index %d should be incorrect", i)
		}
	}
}

func TestGradeCodeError(t *testing.T) {
	c := catalog.CodeError{ErrorLines: []int{2, 3, 4, 5, 9, 10}}

	tests := []struct {
		name     string
		selected []int
		want     bool
	}{
		{"exact", []int{2, 3, 4, 5, 9, 10}, true},
		{"reordered", []int{10, 9, 5, 4, 3, 2}, true},
		{"with repeats", []int{2, 2, 3, 4, 5, 9, 10, 10}, true},
		{"subset", []int{2, 3, 4, 5}, false},
		{"superset", []int{1, 2, 3, 4, 5, 9, 10}, false},
		{"disjoint", []int{1, 6}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeCodeError(c, tt.selected); got != tt.want {
				t.Errorf("GradeCodeError(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestAward(t *testing.T) {
	tests := []struct {
		kind   catalog.Kind
		streak int
		want   int
	}{
		{catalog.KindContent, 0, 5},
		{catalog.KindContent, 7, 5},
		{catalog.KindQuestion, 0, 10},
		{catalog.KindQuestion, 2, 14},
		{catalog.KindCodeError, 0, 15},
		{catalog.KindCodeError, 4, 27},
		{"unknown", 3, 0},
	}
	for _, tt := range tests {
		if got := Award(tt.kind, tt.streak); got != tt.want {
			t.Errorf("Award(%s, %d) = %d, want %d", tt.kind, tt.streak, got, tt.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	out, pts := Evaluate(catalog.KindQuestion, true, 2)
	if !out.Correct || out.Kind != catalog.KindQuestion || pts != 14 {
		t.Errorf("Evaluate correct = %+v, %d", out, pts)
	}

	out, pts = Evaluate(catalog.KindCodeError, false, 5)
	if out.Correct || pts != 0 {
		t.Errorf("Evaluate incorrect = %+v, %d", out, pts)
	}
}

func TestAchievements(t *testing.T) {
	tests := []struct {
		name  string
		kind  catalog.Kind
		state gamification.State
		want  []gamification.Achievement
	}{
		{"none", catalog.KindQuestion, gamification.State{Streak: 2, TotalCorrect: 2}, nil},
		{"streak", catalog.KindQuestion, gamification.State{Streak: 3, TotalCorrect: 3},
			[]gamification.Achievement{gamification.StreakMaster}},
		{"sharp shooter", catalog.KindQuestion, gamification.State{Streak: 1, TotalCorrect: 5},
			[]gamification.Achievement{gamification.SharpShooter}},
		{"inspector needs code error", catalog.KindQuestion, gamification.State{Streak: 0, TotalCorrect: 10},
			[]gamification.Achievement{gamification.SharpShooter}},
		{"inspector", catalog.KindCodeError, gamification.State{Streak: 1, TotalCorrect: 10},
			[]gamification.Achievement{gamification.SharpShooter, gamification.CodeInspector}},
		{"all", catalog.KindCodeError, gamification.State{Streak: 10, TotalCorrect: 10},
			[]gamification.Achievement{gamification.StreakMaster, gamification.SharpShooter, gamification.CodeInspector}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Achievements(tt.kind, tt.state)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Achievements = %v, want %v", got, tt.want)
			}
		})
	}
}
