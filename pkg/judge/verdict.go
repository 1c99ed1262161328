package judge

import (
	"errors"

	"dicegame/pkg/expr"
)

// Stage names the step at which an answer was rejected.
type Stage string

const (
	StageNone      Stage = ""
	StageLex       Stage = "lex"
	StageParse     Stage = "parse"
	StageHistogram Stage = "histogram"
	StageEval      Stage = "eval"
	StageValue     Stage = "value"
	StageUnknown   Stage = "unknown"
)

// StageOf classifies an error returned by Check.
func StageOf(err error) Stage {
	var (
		lexErr   *expr.LexError
		parseErr *expr.ParseError
		histErr  *HistogramError
		valueErr *ValueError
	)
	switch {
	case err == nil:
		return StageNone
	case errors.As(err, &lexErr):
		return StageLex
	case errors.As(err, &parseErr):
		return StageParse
	case errors.As(err, &histErr):
		return StageHistogram
	case errors.Is(err, expr.ErrDivisionByZero):
		return StageEval
	case errors.As(err, &valueErr):
		return StageValue
	}
	return StageUnknown
}

// Verdict is the outcome of judging one line, shaped for presentation.
type Verdict struct {
	Correct bool   `json:"correct"`
	Stage   Stage  `json:"stage,omitempty"`
	Message string `json:"error,omitempty"`
	Value   string `json:"value,omitempty"` // set whenever the answer could be evaluated
}

// Judge is Check for callers that want a value rather than an error.
func (j *Judge) Judge(line string) Verdict {
	value, err := j.evaluate(line)
	v := Verdict{Correct: err == nil, Stage: StageOf(err)}
	if err != nil {
		v.Message = err.Error()
	}
	if value != nil {
		v.Value = value.RatString()
	}
	return v
}
