package scoring

import (
	"sort"

	"github.com/okian/spikefactor/internal/domain/model"
)

// Resolve collapses resubmissions so exactly one answer remains per question.
// The answer with the latest SubmittedAt wins; on equal timestamps the one
// appearing later in the input wins. The result is ordered by question id.
// overwritten counts the answers that were discarded.
func Resolve(answers []model.Answer) (resolved []model.Answer, overwritten int) {
	latest := make(map[int]model.Answer, len(answers))
	for _, a := range answers {
		prev, ok := latest[a.QuestionID]
		if !ok {
			latest[a.QuestionID] = a
			continue
		}
		overwritten++
		if !a.SubmittedAt.Before(prev.SubmittedAt) {
			latest[a.QuestionID] = a
		}
	}

	resolved = make([]model.Answer, 0, len(latest))
	for _, a := range latest {
		resolved = append(resolved, a)
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].QuestionID < resolved[j].QuestionID })
	return resolved, overwritten
}
