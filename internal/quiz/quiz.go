// Package quiz scores the personality quiz.
package quiz

// Category is one of the four personality dimensions.
type Category string

const (
	Analytical Category = "analytical"
	Creative   Category = "creative"
	Social     Category = "social"
	Practical  Category = "practical"
)

// OptionsPerQuestion is the fixed number of options; option i maps to Categories[i].
const OptionsPerQuestion = 4

// Categories is the canonical order. Ties resolve to the earliest entry.
var Categories = [OptionsPerQuestion]Category{Analytical, Creative, Social, Practical}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Question is a single-choice question. Only the ID is needed for scoring.
type Question struct {
	ID      int      `json:"id" yaml:"id"`
	Prompt  string   `json:"question" yaml:"question"`
	Options []string `json:"options" yaml:"options"`
}

// Answers maps question ID to the selected option index.
type Answers map[int]int

// Result is the outcome of scoring an answer set.
type Result struct {
	Counts   map[Category]int `json:"counts"`
	Primary  Category         `json:"primary"`
	Answered int              `json:"answered"`
	Total    int              `json:"total"`
}

// Complete reports whether every question was answered.
func (r Result) Complete() bool {
	return r.Total > 0 && r.Answered == r.Total
}

// Score tallies answers per category in question order and picks the
// category with the highest count. Out-of-range option indices are ignored.
func Score(answers Answers, questions []Question) Result {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}

	answered := 0
	for _, q := range questions {
		idx, ok := answers[q.ID]
		if !ok || idx < 0 || idx >= OptionsPerQuestion {
			continue
		}
		counts[Categories[idx]]++
		answered++
	}

	return Result{
		Counts:   counts,
		Primary:  primary(counts),
		Answered: answered,
		Total:    len(questions),
	}
}

func primary(counts map[Category]int) Category {
	best := Categories[0]
	for _, c := range Categories[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}
