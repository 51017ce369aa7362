package progress

import (
	"EduPlatform/internal/models"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Score grades answers keyed by quiz id. Unanswered quizzes count as wrong
// and answers for unknown quizzes are ignored.
func Score(quizzes []models.Quiz, answers map[string]int) models.QuizResult {
	normalized := normalizeAnswers(answers)

	correct := 0
	for _, q := range quizzes {
		if option, ok := normalized[q.ID]; ok && option == q.CorrectOption {
			correct++
		}
	}

	total := len(quizzes)
	score := 0
	if total > 0 {
		score = 100 * correct / total
	}
	return models.QuizResult{
		Score:          score,
		Passed:         score >= models.PassingScore,
		CorrectAnswers: correct,
		TotalQuestions: total,
	}
}

// normalizeAnswers keys answers by parsed quiz id. When several keys name the
// same quiz, the canonical lower-case form wins, then the first key in
// sorted order.
func normalizeAnswers(answers map[string]int) map[uuid.UUID]int {
	normalized := make(map[uuid.UUID]int, len(answers))
	canonical := make(map[uuid.UUID]bool, len(answers))
	for _, key := range slices.Sorted(maps.Keys(answers)) {
		id, err := uuid.Parse(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		isCanonical := key == id.String()
		if _, seen := normalized[id]; seen && (canonical[id] || !isCanonical) {
			continue
		}
		normalized[id] = answers[key]
		canonical[id] = isCanonical
	}
	return normalized
}
