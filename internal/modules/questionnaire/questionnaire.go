// Package questionnaire defines the static risk-assessment question catalog.
//
// The catalog separates scoring-relevant fields (Question) from
// presentation metadata (Prompt). The scoring engine only ever sees
// Questions; Prompts exist for the questionnaire UI and are served
// verbatim over the API.
package questionnaire

import "fmt"

// Version identifies the deployed question catalog. Stored profiles are
// keyed by it; bumping it invalidates previously computed profiles.
const Version = "2025.1"

// Category identifies which score a question contributes to.
type Category string

const (
	CategoryCapacity    Category = "capacity"
	CategoryWillingness Category = "willingness"
	CategoryBias        Category = "bias"
)

// Option is a single discrete answer choice on the 1-5 scale.
type Option struct {
	Value int    `json:"value"` // 1 (lowest risk) to 5 (highest risk)
	Label string `json:"label"`
}

// Question carries only the fields the scoring engine needs.
// Presentation text lives in Prompt.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`             // >= 1; lets key questions dominate their category
	BiasTag  string   `json:"bias_tag,omitempty"` // set only for bias questions
	Options  []Option `json:"options"`
}

// Prompt is the presentation metadata for a question: the text shown to
// the user and an optional explanation of why the question matters.
type Prompt struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Why        string `json:"why,omitempty"`
}

// AnswerSet maps question id to the chosen option value (1-5).
// A complete set has one entry per catalog question.
type AnswerSet map[string]int

// Catalog is the full versioned question set: three ordered categories.
type Catalog struct {
	Version     string
	Capacity    []Question
	Willingness []Question
	Bias        []Question
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Version:     Version,
		Capacity:    capacityQuestions,
		Willingness: willingnessQuestions,
		Bias:        biasQuestions,
	}
}

// Prompts returns presentation metadata for the catalog's questions,
// in catalog order (capacity, willingness, bias). Questions without a
// registered prompt are skipped.
func (c *Catalog) Prompts() []Prompt {
	byID := make(map[string]Prompt, len(capacityPrompts)+len(willingnessPrompts)+len(biasPrompts))
	for _, set := range [][]Prompt{capacityPrompts, willingnessPrompts, biasPrompts} {
		for _, p := range set {
			byID[p.QuestionID] = p
		}
	}

	questions := c.Questions()
	prompts := make([]Prompt, 0, len(questions))
	for _, q := range questions {
		if p, ok := byID[q.ID]; ok {
			prompts = append(prompts, p)
		}
	}
	return prompts
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []Question {
	questions := make([]Question, 0, len(c.Capacity)+len(c.Willingness)+len(c.Bias))
	questions = append(questions, c.Capacity...)
	questions = append(questions, c.Willingness...)
	questions = append(questions, c.Bias...)
	return questions
}

// Validate checks structural invariants of the catalog. It is run once
// at startup; a failure is a deployment configuration defect.
func (c *Catalog) Validate() error {
	categories := []struct {
		name      Category
		questions []Question
	}{
		{CategoryCapacity, c.Capacity},
		{CategoryWillingness, c.Willingness},
		{CategoryBias, c.Bias},
	}

	seen := make(map[string]bool)
	for _, cat := range categories {
		if len(cat.questions) == 0 {
			return fmt.Errorf("catalog category %s has no questions", cat.name)
		}
		for _, q := range cat.questions {
			if q.Category != cat.name {
				return fmt.Errorf("question %s is in the %s set but tagged %s", q.ID, cat.name, q.Category)
			}
			if seen[q.ID] {
				return fmt.Errorf("duplicate question id %s", q.ID)
			}
			seen[q.ID] = true
			if q.Weight < 1 {
				return fmt.Errorf("question %s has weight %.2f, must be >= 1", q.ID, q.Weight)
			}
			if len(q.Options) == 0 {
				return fmt.Errorf("question %s has no options", q.ID)
			}
			for _, opt := range q.Options {
				if opt.Value < 1 || opt.Value > 5 {
					return fmt.Errorf("question %s has option value %d outside 1-5", q.ID, opt.Value)
				}
			}
			if cat.name == CategoryBias && q.BiasTag == "" {
				return fmt.Errorf("bias question %s has no bias tag", q.ID)
			}
		}
	}

	return nil
}
