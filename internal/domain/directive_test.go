package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Directive
	}{
		{"if alone", "#if\n", Directive{Kind: OpenIf}},
		{"if with argument", "#if FEATURE\n", Directive{Kind: OpenIf}},
		{"if indented", "   #if  \n", Directive{Kind: OpenIf}},
		{"ifdef", "#ifdef DEBUG\n", Directive{Kind: OpenIfdef, Name: "DEBUG"}},
		{"ifdef tabs and crlf", "\t#ifdef\tWIN_32 \r\n", Directive{Kind: OpenIfdef, Name: "WIN_32"}},
		{"ifdef without terminator", "#ifdef A", Directive{Kind: OpenIfdef, Name: "A"}},
		{"ifndef", "#ifndef NDEBUG\n", Directive{Kind: OpenIfndef, Name: "NDEBUG"}},
		{"else", "#else\n", Directive{Kind: Else}},
		{"else trailing blanks", "  #else   \n", Directive{Kind: Else}},
		{"endif", "#endif\n", Directive{Kind: Endif}},
		{"endif no newline", "#endif", Directive{Kind: Endif}},
		{"ifdef missing name", "#ifdef\n", Directive{Kind: Content}},
		{"ifdef two names", "#ifdef A B\n", Directive{Kind: Content}},
		{"ifdef punctuation", "#ifdef A-B\n", Directive{Kind: Content}},
		{"if expression", "#if A && B\n", Directive{Kind: Content}},
		{"elif is content", "#elif A\n", Directive{Kind: Content}},
		{"upper case", "#IFDEF A\n", Directive{Kind: Content}},
		{"endif with comment", "#endif // A\n", Directive{Kind: Content}},
		{"space after hash", "# ifdef A\n", Directive{Kind: Content}},
		{"code before directive", "x #endif\n", Directive{Kind: Content}},
		{"include", "#include <stdio.h>\n", Directive{Kind: Content}},
		{"empty", "", Directive{Kind: Content}},
		{"blank line", "\n", Directive{Kind: Content}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestDirective_Opens(t *testing.T) {
	assert.True(t, Directive{Kind: OpenIf}.Opens())
	assert.True(t, Directive{Kind: OpenIfdef, Name: "A"}.Opens())
	assert.True(t, Directive{Kind: OpenIfndef, Name: "A"}.Opens())
	assert.False(t, Directive{Kind: Else}.Opens())
	assert.False(t, Directive{Kind: Endif}.Opens())
	assert.False(t, Directive{Kind: Content}.Opens())
}

func TestDirective_String(t *testing.T) {
	assert.Equal(t, "#ifdef A", Directive{Kind: OpenIfdef, Name: "A"}.String())
	assert.Equal(t, "#endif", Directive{Kind: Endif}.String())
	assert.Equal(t, "DirectiveKind(42)", DirectiveKind(42).String())
}
