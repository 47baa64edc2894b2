package service

import (
	"math"
	"testing"

	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
)

func questionsWithKey(correct ...int) []model.Question {
	qs := make([]model.Question, 0, len(correct))
	for _, c := range correct {
		qs = append(qs, model.Question{Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectOptionIndex: c})
	}
	return qs
}

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		key         []int
		submitted   []int
		wantScore   int
		wantAnswers []int
		wantPercent float64
	}{
		{
			name:        "partially correct",
			key:         []int{0, 1, 2},
			submitted:   []int{0, 1, 1},
			wantScore:   2,
			wantAnswers: []int{0, 1, 1},
			wantPercent: 200.0 / 3,
		},
		{
			name:        "nothing answered",
			key:         []int{0, 1, 2},
			submitted:   []int{},
			wantScore:   0,
			wantAnswers: []int{-1, -1, -1},
			wantPercent: 0,
		},
		{
			name:        "short submission pads the tail",
			key:         []int{3, 3, 3},
			submitted:   []int{3},
			wantScore:   1,
			wantAnswers: []int{3, -1, -1},
			wantPercent: 100.0 / 3,
		},
		{
			name:        "extra answers are dropped",
			key:         []int{1},
			submitted:   []int{1, 2, 3},
			wantScore:   1,
			wantAnswers: []int{1},
			wantPercent: 100,
		},
		{
			name:        "out of range values are stored and never match",
			key:         []int{0, 1},
			submitted:   []int{7, -5},
			wantScore:   0,
			wantAnswers: []int{7, -5},
			wantPercent: 0,
		},
		{
			name:        "skipped question never matches a key of -1",
			key:         []int{-1, 2},
			submitted:   []int{-1, 2},
			wantScore:   1,
			wantAnswers: []int{-1, 2},
			wantPercent: 50,
		},
		{
			name:        "exam without questions",
			key:         nil,
			submitted:   []int{0},
			wantScore:   0,
			wantAnswers: []int{},
			wantPercent: 0,
		},
	}

	s := NewScoringService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := s.Score(questionsWithKey(tt.key...), tt.submitted)
			if g.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", g.Score, tt.wantScore)
			}
			if g.TotalQuestions != len(tt.key) {
				t.Fatalf("total = %d, want %d", g.TotalQuestions, len(tt.key))
			}
			if len(g.Answers) != len(tt.wantAnswers) {
				t.Fatalf("answers = %v, want %v", g.Answers, tt.wantAnswers)
			}
			for i := range tt.wantAnswers {
				if g.Answers[i] != tt.wantAnswers[i] {
					t.Fatalf("answers = %v, want %v", g.Answers, tt.wantAnswers)
				}
			}
			if math.Abs(g.Percentage-tt.wantPercent) > 1e-9 {
				t.Fatalf("percentage = %v, want %v", g.Percentage, tt.wantPercent)
			}
		})
	}
}

func TestScoreRoundsToTwoPlacesForDisplay(t *testing.T) {
	g := NewScoringService().Score(questionsWithKey(0, 1, 2), []int{0, 1, 1})
	if got := math.Round(g.Percentage*100) / 100; got != 66.67 {
		t.Fatalf("rounded percentage = %v, want 66.67", got)
	}
}

func TestReview(t *testing.T) {
	reviews := NewScoringService().Review(questionsWithKey(0, 1, 2), []int{0, 3})
	if len(reviews) != 3 {
		t.Fatalf("len(reviews) = %d, want 3", len(reviews))
	}

	want := []struct {
		submitted int
		answered  bool
		correct   bool
	}{
		{0, true, true},
		{3, true, false},
		{-1, false, false},
	}
	for i, w := range want {
		r := reviews[i]
		if r.Index != i || r.SubmittedIndex != w.submitted || r.IsAnswered != w.answered || r.IsCorrect != w.correct {
			t.Fatalf("review[%d] = %+v, want submitted=%d answered=%v correct=%v", i, r, w.submitted, w.answered, w.correct)
		}
	}
}

func TestNormalizeAnswers(t *testing.T) {
	zero, two := 0, 2
	got := NormalizeAnswers([]*int{&zero, nil, &two})
	want := []int{0, -1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeAnswers = %v, want %v", got, want)
		}
	}
	if out := NormalizeAnswers(nil); len(out) != 0 {
		t.Fatalf("NormalizeAnswers(nil) = %v, want empty", out)
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(0, 0); got != 0 {
		t.Fatalf("Percentage(0, 0) = %v", got)
	}
	if got := Percentage(3, 4); got != 75 {
		t.Fatalf("Percentage(3, 4) = %v", got)
	}
}
