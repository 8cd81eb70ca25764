// Package employee holds employee records and their field rules.
package employee

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Field limits.
const (
	MaxNameLength = 40
	MinAge        = 18
	MaxAge        = 70
	MinSalary     = 0
	MaxSalary     = 1_000_000
)

// Departments are the accepted department names, in display order.
var Departments = []string{"Engineering", "Finance", "Marketing", "Operations", "Sales", "Support"}

// Record is a stored employee. ID is assigned by the store.
type Record struct {
	ID         int
	Name       string
	Age        int
	Department string
	Salary     int
}

var (
	ErrEmptyName   = errors.New("name must not be empty")
	ErrNameTooLong = fmt.Errorf("name must be at most %d characters", MaxNameLength)
	ErrNotNumber   = errors.New("value must be a whole number")
	ErrOutOfRange  = errors.New("value out of range")
	ErrDepartment  = errors.New("unknown department")
)

// RangeError reports a number outside its allowed bounds.
type RangeError struct {
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d is outside %d..%d", e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// AmbiguousError lists the departments matching an abbreviated input.
type AmbiguousError struct {
	Input      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q matches %s", e.Input, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousError) Unwrap() error {
	return ErrDepartment
}

// ParseName trims input and checks its length.
func ParseName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// ParseAge parses a whole number of years within MinAge..MaxAge.
func ParseAge(input string) (int, error) {
	return parseBounded(input, MinAge, MaxAge)
}

// ParseSalary parses a whole salary within MinSalary..MaxSalary. Digit group
// separators "," and "_" are ignored.
func ParseSalary(input string) (int, error) {
	cleaned := strings.NewReplacer(",", "", "_", "").Replace(input)
	return parseBounded(cleaned, MinSalary, MaxSalary)
}

func parseBounded(input string, min, max int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotNumber
	}
	if value < min || value > max {
		return 0, &RangeError{Value: value, Min: min, Max: max}
	}
	return value, nil
}

// ResolveDepartment maps input to one of Departments. An exact
// case-insensitive match wins, then a unique prefix, then the fuzzy match
// with the smallest edit distance when that minimum is unique.
func ResolveDepartment(input string) (string, error) {
	query := strings.TrimSpace(input)
	if query == "" {
		return "", ErrDepartment
	}
	for _, dept := range Departments {
		if strings.EqualFold(dept, query) {
			return dept, nil
		}
	}
	var prefixed []string
	for _, dept := range Departments {
		if strings.HasPrefix(strings.ToLower(dept), strings.ToLower(query)) {
			prefixed = append(prefixed, dept)
		}
	}
	switch len(prefixed) {
	case 0:
	case 1:
		return prefixed[0], nil
	default:
		return "", &AmbiguousError{Input: query, Candidates: prefixed}
	}

	ranks := fuzzy.RankFindFold(query, Departments)
	if len(ranks) == 0 {
		return "", fmt.Errorf("%w: %q", ErrDepartment, query)
	}
	sort.Sort(ranks)
	if len(ranks) == 1 || ranks[0].Distance < ranks[1].Distance {
		return ranks[0].Target, nil
	}
	candidates := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		candidates = append(candidates, rank.Target)
	}
	sort.Strings(candidates)
	return "", &AmbiguousError{Input: query, Candidates: candidates}
}
