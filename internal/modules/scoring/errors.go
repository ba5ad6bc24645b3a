package scoring

import (
	"errors"
	"fmt"
)

// ErrDegenerateCatalog indicates a category whose total weight is zero,
// making score normalization undefined. This is a deployment
// configuration defect, not a per-request failure.
var ErrDegenerateCatalog = errors.New("catalog category has zero total weight")

// MissingAnswerError indicates an answer set that omits a catalog
// question. Callers surface it to the user as an incomplete
// questionnaire.
type MissingAnswerError struct {
	QuestionID string
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("missing answer for question %s", e.QuestionID)
}
