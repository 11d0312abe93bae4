package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Operators and formats accepted by Validate.
const (
	OperatorAnd = "AND"
	OperatorOr  = "OR"

	FormatJSON = "json"
	FormatFlat = "flat"
)

var (
	choiceOperator = []string{OperatorAnd, OperatorOr}
	choiceFormat   = []string{FormatJSON, FormatFlat}
)

var (
	ErrOwnerRequired     = errors.New("owner is required")
	ErrInvalidOperator   = errors.New("invalid operator")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrDelimiterRequired = errors.New("delimiter is required when format is `flat`")
)

// Inputs holds the raw run options after defaults have been applied.
type Inputs struct {
	Owner     string
	Topics    string
	Operator  string
	MatrixUse bool
	Format    string
	Delimiter string
}

// Options is the validated form of Inputs.
type Options struct {
	Owner     string
	Topics    []string
	Operator  string
	MatrixUse bool
	Format    string
	Delimiter string
}

// Validate checks the inputs in order and returns the first violation.
func (in Inputs) Validate() (Options, error) {
	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		return Options{}, ErrOwnerRequired
	}
	if !slices.Contains(choiceOperator, in.Operator) {
		return Options{}, fmt.Errorf("%w: %s, accepted values: %s", ErrInvalidOperator, in.Operator, strings.Join(choiceOperator, ", "))
	}
	if !slices.Contains(choiceFormat, in.Format) {
		return Options{}, fmt.Errorf("%w: %s, accepted values: %s", ErrInvalidFormat, in.Format, strings.Join(choiceFormat, ", "))
	}
	if in.Format == FormatFlat && in.Delimiter == "" {
		return Options{}, ErrDelimiterRequired
	}

	return Options{
		Owner:     owner,
		Topics:    ParseTopics(in.Topics),
		Operator:  in.Operator,
		MatrixUse: in.MatrixUse,
		Format:    in.Format,
		Delimiter: in.Delimiter,
	}, nil
}

// ParseTopics splits a comma and/or space separated topic list.
// Order is preserved and duplicates are kept.
func ParseTopics(raw string) []string {
	topics := []string{}
	for _, piece := range strings.Split(strings.TrimSpace(raw), ",") {
		for _, topic := range strings.Split(strings.TrimSpace(piece), " ") {
			if topic != "" {
				topics = append(topics, topic)
			}
		}
	}
	return topics
}

// Build returns the repository search query for owner and topics.
// Topic values are not escaped.
func Build(owner string, topics []string, operator string) string {
	q := "user:" + owner
	if len(topics) > 0 {
		q += "+" + strings.Join(topics, "+"+operator+"+") + "+in:topics"
	}
	return q
}

// Query returns the search query for the options.
func (o Options) Query() string {
	return Build(o.Owner, o.Topics, o.Operator)
}
