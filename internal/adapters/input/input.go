// Package input decodes answer sets and attempts supplied as JSON documents.
// Documents are validated against a JSON schema before decoding.
package input

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/types"
)

// wireAnswer accepts the answer as a JSON string ("agree", "4") or integer.
type wireAnswer struct {
	QuestionID  int             `json:"question_id"`
	Answer      json.RawMessage `json:"answer"`
	SubmittedAt string          `json:"submitted_at"`
}

type wireAttempt struct {
	ID      string       `json:"id"`
	Product string       `json:"product"`
	Answers []wireAnswer `json:"answers"`
}

// DecodeAnswers reads a JSON array of answers.
func DecodeAnswers(r io.Reader) ([]model.Answer, error) {
	var wire []wireAnswer
	if err := decode(r, "answers.json", &wire); err != nil {
		return nil, err
	}
	return toAnswers(wire)
}

// DecodeAttempts reads a JSON array of attempts. Product tags are
// normalized when recognised and kept verbatim otherwise, so the engine
// reports unknown products per attempt.
func DecodeAttempts(r io.Reader) ([]model.Attempt, error) {
	var wire []wireAttempt
	if err := decode(r, "attempts.json", &wire); err != nil {
		return nil, err
	}

	out := make([]model.Attempt, 0, len(wire))
	for _, w := range wire {
		answers, err := toAnswers(w.Answers)
		if err != nil {
			return nil, fmt.Errorf("attempt %s: %w", w.ID, err)
		}
		product, err := types.ParseProduct(w.Product)
		if err != nil {
			product = types.Product(w.Product)
		}
		out = append(out, model.Attempt{ID: w.ID, Product: product, Answers: answers})
	}
	return out, nil
}

func decode(r io.Reader, schema string, v any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := validate(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func toAnswers(wire []wireAnswer) ([]model.Answer, error) {
	var firstErr error
	answers := lo.Map(wire, func(w wireAnswer, i int) model.Answer {
		a := model.Answer{QuestionID: w.QuestionID, Raw: rawValue(w.Answer)}
		if w.SubmittedAt != "" {
			t, err := time.Parse(time.RFC3339Nano, w.SubmittedAt)
			if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("%w: answer %d: submitted_at: %v", ErrInvalidInput, i, err)
			}
			a.SubmittedAt = t
		}
		return a
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return answers, nil
}

func rawValue(msg json.RawMessage) string {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err != nil {
		return strings.TrimSpace(string(msg))
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	// Integral floats such as 4.0 or 4e0 are integers to the schema.
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}
