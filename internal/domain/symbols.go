package domain

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	// ErrConflictingSymbols is returned when a symbol is both defined and undefined.
	ErrConflictingSymbols = errors.New("symbol is both defined and undefined")
	// ErrInvalidSymbol is returned for names a directive could never reference.
	ErrInvalidSymbol = errors.New("invalid symbol name")
)

var reSymbol = regexp.MustCompile(`^\w+$`)

// Resolution is the truth value of a symbol under the configured sets.
type Resolution int

// Symbols resolve to one of these values.
const (
	Unresolved Resolution = iota
	Defined
	Undefined
)

// Symbols is the immutable pair of defined and undefined symbol sets for a
// run. It is safe for concurrent use once constructed.
type Symbols struct {
	on  map[string]struct{}
	off map[string]struct{}
}

// NewSymbols builds the symbol sets, rejecting names present in both.
func NewSymbols(defineOn, defineOff []string) (*Symbols, error) {
	s := &Symbols{
		on:  make(map[string]struct{}, len(defineOn)),
		off: make(map[string]struct{}, len(defineOff)),
	}

	for _, name := range defineOn {
		if !reSymbol.MatchString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, name)
		}

		s.on[name] = struct{}{}
	}

	var conflicts []string

	for _, name := range defineOff {
		if !reSymbol.MatchString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, name)
		}

		if _, ok := s.on[name]; ok {
			conflicts = append(conflicts, name)
		}

		s.off[name] = struct{}{}
	}

	if len(conflicts) > 0 {
		slices.Sort(conflicts)
		conflicts = slices.Compact(conflicts)

		return nil, fmt.Errorf("%w: %s", ErrConflictingSymbols, strings.Join(conflicts, ", "))
	}

	return s, nil
}

// Resolve reports whether name is defined, undefined, or unknown.
func (s *Symbols) Resolve(name string) Resolution {
	if s == nil {
		return Unresolved
	}

	if _, ok := s.on[name]; ok {
		return Defined
	}

	if _, ok := s.off[name]; ok {
		return Undefined
	}

	return Unresolved
}

// Defined returns the sorted defined symbol names.
func (s *Symbols) Defined() []string {
	return sortedKeys(s.onSet())
}

// Undefined returns the sorted undefined symbol names.
func (s *Symbols) Undefined() []string {
	return sortedKeys(s.offSet())
}

// Empty reports whether no symbol is configured, in which case every
// conditional block is passed through.
func (s *Symbols) Empty() bool {
	return len(s.onSet()) == 0 && len(s.offSet()) == 0
}

func (s *Symbols) onSet() map[string]struct{} {
	if s == nil {
		return nil
	}

	return s.on
}

func (s *Symbols) offSet() map[string]struct{} {
	if s == nil {
		return nil
	}

	return s.off
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
