package domain

import (
	"errors"
	"fmt"
)

// Scope is the conditional-nesting context active at a point in a file.
type Scope int

// Scope values. The zero value is not a valid scope.
const (
	_ Scope = iota
	// Accept scopes emit content; their condition is known to be true.
	Accept
	// Reject scopes suppress content; their condition is known to be false.
	Reject
	// AcceptUnresolved scopes pass everything through verbatim, directive
	// lines included, because their condition is unknown.
	AcceptUnresolved
	// RejectUnresolved scopes track nesting inside a Reject and never emit.
	RejectUnresolved
)

func (s Scope) String() string {
	switch s {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case AcceptUnresolved:
		return "accept-unresolved"
	case RejectUnresolved:
		return "reject-unresolved"
	}

	return fmt.Sprintf("Scope(%d)", int(s))
}

// ErrMalformedInput marks unbalanced conditional structure.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError describes where the conditional structure broke.
type MalformedInputError struct {
	Line      int
	Directive Directive
	Reason    string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Directive, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrMalformedInput).
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

type frame struct {
	scope Scope
	line  int
	open  Directive
}

// Engine decides, line by line, whether input is emitted or suppressed.
// An Engine is not safe for concurrent use; create one per file.
type Engine struct {
	symbols *Symbols
	stack   []frame
	line    int
	err     error
}

// NewEngine returns an Engine ready to process the first line of a file.
func NewEngine(symbols *Symbols) *Engine {
	e := &Engine{symbols: symbols}
	e.Reset()

	return e
}

// Reset reinitializes the engine to the top-level sentinel scope.
func (e *Engine) Reset() {
	e.stack = append(e.stack[:0], frame{scope: AcceptUnresolved})
	e.line = 0
	e.err = nil
}

// Depth returns the number of open conditional blocks.
func (e *Engine) Depth() int {
	return len(e.stack) - 1
}

// Line returns how many lines have been processed since the last Reset.
func (e *Engine) Line() int {
	return e.line
}

// Stack returns a snapshot of the scopes, bottom first.
func (e *Engine) Stack() []Scope {
	scopes := make([]Scope, len(e.stack))
	for i, f := range e.stack {
		scopes[i] = f.scope
	}

	return scopes
}

// Process consumes one line and reports whether it is emitted. Once an error
// is returned the engine keeps returning it until Reset.
func (e *Engine) Process(line string) (bool, error) {
	if e.err != nil {
		return false, e.err
	}

	e.line++
	d := Classify(line)
	top := e.top()

	switch top {
	case RejectUnresolved:
		switch {
		case d.Opens():
			e.push(RejectUnresolved, d)
		case d.Kind == Endif:
			e.pop()
		}

		return false, nil

	case Reject:
		switch {
		case d.Opens():
			e.push(RejectUnresolved, d)
		case d.Kind == Else:
			e.replaceTop(Accept)
		case d.Kind == Endif:
			e.pop()
		}

		return false, nil

	case Accept, AcceptUnresolved:
		return e.processAccepting(top, d)
	}

	panic(fmt.Sprintf("cpre: unknown scope %v", top))
}

func (e *Engine) processAccepting(top Scope, d Directive) (bool, error) {
	switch d.Kind {
	case Endif:
		if len(e.stack) == 1 {
			return false, e.fail(d, "no matching conditional to close")
		}

		e.pop()

		return top == AcceptUnresolved, nil

	case Else:
		if len(e.stack) == 1 {
			return false, e.fail(d, "no matching conditional for #else")
		}

		if top == Accept {
			e.replaceTop(Reject)

			return false, nil
		}

		return true, nil

	case OpenIfdef:
		return e.openResolved(d, e.symbols.Resolve(d.Name), Defined), nil

	case OpenIfndef:
		return e.openResolved(d, e.symbols.Resolve(d.Name), Undefined), nil

	case OpenIf:
		e.push(AcceptUnresolved, d)

		return true, nil

	case Content:
		return true, nil
	}

	panic(fmt.Sprintf("cpre: unknown directive %v", d.Kind))
}

// openResolved pushes the scope for an #ifdef or #ifndef. want is the
// resolution that makes the condition true.
func (e *Engine) openResolved(d Directive, got, want Resolution) bool {
	switch got {
	case Unresolved:
		e.push(AcceptUnresolved, d)

		return true
	case want:
		e.push(Accept, d)
	default:
		e.push(Reject, d)
	}

	return false
}

// Finish reports an error if any conditional block is still open.
func (e *Engine) Finish() error {
	if e.err != nil {
		return e.err
	}

	if len(e.stack) > 1 {
		innermost := e.stack[len(e.stack)-1]

		return &MalformedInputError{
			Line:      innermost.line,
			Directive: innermost.open,
			Reason:    fmt.Sprintf("unclosed conditional at end of input (%d open)", e.Depth()),
		}
	}

	return nil
}

func (e *Engine) top() Scope {
	return e.stack[len(e.stack)-1].scope
}

func (e *Engine) push(s Scope, d Directive) {
	e.stack = append(e.stack, frame{scope: s, line: e.line, open: d})
}

func (e *Engine) pop() {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *Engine) replaceTop(s Scope) {
	e.stack[len(e.stack)-1].scope = s
}

func (e *Engine) fail(d Directive, reason string) error {
	e.err = &MalformedInputError{Line: e.line, Directive: d, Reason: reason}

	return e.err
}
