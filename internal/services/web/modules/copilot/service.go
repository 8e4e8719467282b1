package copilot

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/man3/internal/services/assessor"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
)

const (
	// maxQueryRunes bounds one question.
	maxQueryRunes = 4000
	// maxContextRunes bounds the practice context sent with a question.
	maxContextRunes = 8000
)

// Asker answers assessor questions. *assessor.Assessor satisfies it.
type Asker interface {
	Available() bool
	Model() string
	Greeting() assessor.Message
	UserMessage(text string) assessor.Message
	Ask(ctx context.Context, query, contextText string) assessor.Message
}

var _ Asker = (*assessor.Assessor)(nil)

// question is one validated ask.
type question struct {
	Query   string `json:"query"`
	Context string `json:"context,omitempty"`
}

func (q question) normalize() (question, error) {
	q.Query = strings.TrimSpace(q.Query)
	q.Context = strings.TrimSpace(q.Context)
	if q.Query == "" {
		return question{}, apperrors.E(apperrors.KindInvalidInput, "query is required")
	}
	if utf8.RuneCountInString(q.Query) > maxQueryRunes || utf8.RuneCountInString(q.Context) > maxContextRunes {
		return question{}, apperrors.E(apperrors.KindInvalidInput, "question is too long")
	}
	return q, nil
}

type service struct {
	asker Asker
}

func newService(asker Asker) service {
	if asker == nil {
		asker = assessor.New(assessor.Config{})
	}
	return service{asker: asker}
}

// ask returns the echoed user message and the assessor answer.
func (s service) ask(ctx context.Context, q question) (assessor.Message, assessor.Message) {
	return s.asker.UserMessage(q.Query), s.asker.Ask(ctx, q.Query, q.Context)
}
