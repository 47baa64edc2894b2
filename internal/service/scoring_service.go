package service

import (
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
)

// Grade is the outcome of scoring one submission.
type Grade struct {
	Answers        []int // one entry per question, model.Unanswered when skipped
	Score          int
	TotalQuestions int
	Percentage     float64
}

// QuestionReview is the per-question view shown after an exam.
type QuestionReview struct {
	Index              int
	Text               string
	Options            []string
	CorrectOptionIndex int
	SubmittedIndex     int
	IsAnswered         bool
	IsCorrect          bool
}

// ScoringService grades answer sequences against an exam's answer key.
// Implementations are pure: same input, same output, no I/O.
type ScoringService interface {
	Score(questions []model.Question, submitted []int) Grade
	Review(questions []model.Question, answers []int) []QuestionReview
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return scoringService{}
}

// Score compares the answer at each question position with the correct
// index. Positions past the end of submitted count as unanswered; positions
// past the last question are dropped. Out-of-range values are kept as they
// are and simply never match.
func (scoringService) Score(questions []model.Question, submitted []int) Grade {
	g := Grade{
		Answers:        make([]int, len(questions)),
		TotalQuestions: len(questions),
	}
	for i, q := range questions {
		answer := answerAt(submitted, i)
		g.Answers[i] = answer
		if isCorrect(answer, q.CorrectOptionIndex) {
			g.Score++
		}
	}
	g.Percentage = Percentage(g.Score, g.TotalQuestions)
	return g
}

// Review rebuilds the breakdown from stored answers.
func (scoringService) Review(questions []model.Question, answers []int) []QuestionReview {
	out := make([]QuestionReview, 0, len(questions))
	for i, q := range questions {
		answer := answerAt(answers, i)
		out = append(out, QuestionReview{
			Index:              i,
			Text:               q.Text,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
			SubmittedIndex:     answer,
			IsAnswered:         answer != model.Unanswered,
			IsCorrect:          isCorrect(answer, q.CorrectOptionIndex),
		})
	}
	return out
}

// Percentage is score/total*100, or 0 for an exam without questions.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// NormalizeAnswers turns the wire form, where nil marks a skipped question,
// into a positional sequence.
func NormalizeAnswers(raw []*int) []int {
	out := make([]int, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = model.Unanswered
			continue
		}
		out[i] = *v
	}
	return out
}

// isCorrect never credits a skipped question, even against a malformed key of -1.
func isCorrect(answer, correct int) bool {
	return answer != model.Unanswered && answer == correct
}

func answerAt(answers []int, i int) int {
	if i < len(answers) {
		return answers[i]
	}
	return model.Unanswered
}
