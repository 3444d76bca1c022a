package domain

import (
	"fmt"
	"regexp"
)

// DirectiveKind identifies which conditional marker a line carries.
type DirectiveKind int

// Recognized directive kinds. Content is every line that is not a directive.
const (
	Content DirectiveKind = iota
	OpenIf
	OpenIfdef
	OpenIfndef
	Else
	Endif
)

func (k DirectiveKind) String() string {
	switch k {
	case Content:
		return "content"
	case OpenIf:
		return "#if"
	case OpenIfdef:
		return "#ifdef"
	case OpenIfndef:
		return "#ifndef"
	case Else:
		return "#else"
	case Endif:
		return "#endif"
	}

	return fmt.Sprintf("DirectiveKind(%d)", int(k))
}

// Directive is the classification of a single input line.
type Directive struct {
	Kind DirectiveKind
	// Name is the symbol tested by #ifdef and #ifndef.
	Name string
}

// Opens reports whether the directive starts a new conditional block.
func (d Directive) Opens() bool {
	return d.Kind == OpenIf || d.Kind == OpenIfdef || d.Kind == OpenIfndef
}

func (d Directive) String() string {
	if d.Name != "" {
		return d.Kind.String() + " " + d.Name
	}

	return d.Kind.String()
}

// Each pattern tolerates surrounding blanks and an optional line terminator,
// so lines can be classified without stripping them.
var (
	reIf     = regexp.MustCompile(`^[ \t]*#if(?:[ \t]+\w+)?[ \t]*\r?\n?$`)
	reIfdef  = regexp.MustCompile(`^[ \t]*#ifdef[ \t]+(\w+)[ \t]*\r?\n?$`)
	reIfndef = regexp.MustCompile(`^[ \t]*#ifndef[ \t]+(\w+)[ \t]*\r?\n?$`)
	reElse   = regexp.MustCompile(`^[ \t]*#else[ \t]*\r?\n?$`)
	reEndif  = regexp.MustCompile(`^[ \t]*#endif[ \t]*\r?\n?$`)
)

// Classify recognizes which directive, if any, the line holds.
func Classify(line string) Directive {
	if reIf.MatchString(line) {
		return Directive{Kind: OpenIf}
	}

	if sub := reIfdef.FindStringSubmatch(line); sub != nil {
		return Directive{Kind: OpenIfdef, Name: sub[1]}
	}

	if sub := reIfndef.FindStringSubmatch(line); sub != nil {
		return Directive{Kind: OpenIfndef, Name: sub[1]}
	}

	if reElse.MatchString(line) {
		return Directive{Kind: Else}
	}

	if reEndif.MatchString(line) {
		return Directive{Kind: Endif}
	}

	return Directive{Kind: Content}
}
