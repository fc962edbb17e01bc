package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/types"
)

var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://spikefactor.app/report"))

// Fingerprint derives a stable report id from the product and the effective
// answers. Answer order, surrounding whitespace and case do not matter, so
// regenerating the same answer set yields the same id.
func Fingerprint(product types.Product, answers []model.Answer) string {
	lines := make([]string, 0, len(answers)+1)
	lines = append(lines, product.String())
	sorted := append([]model.Answer(nil), answers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].QuestionID < sorted[j].QuestionID })
	for _, a := range sorted {
		lines = append(lines, strconv.Itoa(a.QuestionID)+"="+strings.ToLower(strings.TrimSpace(a.Raw)))
	}
	return uuid.NewSHA1(reportNamespace, []byte(strings.Join(lines, "\n"))).String()
}
