package parser

import (
	"strconv"
	"strings"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// ParseIndex converts a user-facing position such as "2" into an Index
// Signs and zero are rejected
func ParseIndex(raw string) (model.Index, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "+") {
		return model.Index{}, &Error{Err: ErrInvalidFormat, Message: MessageInvalidIndex}
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return model.Index{}, &Error{Err: ErrInvalidFormat, Message: MessageInvalidIndex}
	}

	return model.IndexFromOneBased(n)
}

// trimmed adapts a model constructor to ignore surrounding whitespace
func trimmed[T any](parse func(string) (T, error)) func(string) (T, error) {
	return func(raw string) (T, error) {
		return parse(strings.TrimSpace(raw))
	}
}

var (
	parseName        = trimmed(model.NewName)
	parsePhone       = trimmed(model.NewPhone)
	parseEmail       = trimmed(model.NewEmail)
	parseAddress     = trimmed(model.NewAddress)
	parseDateAndTime = trimmed(model.NewDateAndTime)
	parseLocation    = trimmed(model.NewLocation)
	parseDescription = trimmed(model.NewDescription)
	parseBudget      = trimmed(model.NewBudget)
	parseRecurrence  = trimmed(model.NewRecurrence)
)

func trimAll(raws []string) []string {
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i] = strings.TrimSpace(raw)
	}
	return out
}

// parseOptional parses the value only when present; nil means "not given"
func parseOptional[T any](raw string, present bool, parse func(string) (T, error)) (*T, error) {
	if !present {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseSetForEdit parses a multi-valued field of an edit command
// No values means "unchanged" (nil); a single empty value means "clear the set"
func parseSetForEdit[T any](raws []string, parse func([]string) ([]T, error)) (*[]T, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	if len(raws) == 1 && strings.TrimSpace(raws[0]) == "" {
		empty := []T{}
		return &empty, nil
	}
	values, err := parse(trimAll(raws))
	if err != nil {
		return nil, err
	}
	return &values, nil
}
