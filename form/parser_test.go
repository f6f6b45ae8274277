package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *Sequent {
	t.Helper()
	seq, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return seq
}

func TestParseSequent(t *testing.T) {
	seq := parse(t, "A, A -> B |- B")
	require.Len(t, seq.Premises, 2)
	require.Len(t, seq.Conclusions, 1)
	assert.Equal(t, "A", seq.Premises[0].String())
	assert.Equal(t, "(!(A)) | (B)", seq.Premises[1].String())
	assert.Equal(t, "B", seq.Conclusions[0].String())
}

func TestParseEmptySides(t *testing.T) {
	seq := parse(t, "|- *")
	assert.Empty(t, seq.Premises)
	require.Len(t, seq.Conclusions, 1)
	assert.Equal(t, "*", seq.Conclusions[0].String())

	seq = parse(t, "A |-")
	require.Len(t, seq.Premises, 1)
	assert.Empty(t, seq.Conclusions)
}

func TestParseConnectives(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"!(A & B) |- ~", "!((A) & (B))"},
		{"A | B & C |- ~", "(A) | ((B) & (C))"},
		{"A -> B |- ~", "(!(A)) | (B)"},
		{"A <- B |- ~", "(A) | (!(B))"},
		{"A <-> B |- ~", "((!(A)) | (B)) & ((A) | (!(B)))"},
		{"A ^ B |- ~", "((A) & (!(B))) | ((!(A)) & (B))"},
		{"* & ~ |- ~", "(*) & (~)"},
	}
	for _, tt := range tests {
		seq := parse(t, tt.input)
		require.Len(t, seq.Premises, 1, "input %q", tt.input)
		assert.Equal(t, tt.want, seq.Premises[0].String(), "input %q", tt.input)
	}
}

func TestParseTermsAndEquality(t *testing.T) {
	seq := parse(t, "P(a, b), a == b, f(a) != g(b, :x) |- P(b, a)")
	require.Len(t, seq.Premises, 3)
	assert.Equal(t, "P(a, b)", seq.Premises[0].String())
	assert.Equal(t, "a == b", seq.Premises[1].String())
	assert.Equal(t, "!(f(a) == g(b, :x))", seq.Premises[2].String())
}

func TestParseComments(t *testing.T) {
	seq := parse(t, "# a comment line\nA, # trailing\nB |- A")
	require.Len(t, seq.Premises, 2)
	assert.Equal(t, "B", seq.Premises[1].String())
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"A",             // no turnstile
		"A |- B |- C",   // double turnstile
		"A & |- B",      // missing operand
		"P( |- Q",       // unclosed application
		"A ) |- B",      // stray paren
		":x |- A",       // variable as formula
		"A = B |- C",    // single = is not an operator
	}
	for _, input := range tests {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseArityMismatch(t *testing.T) {
	_, err := Parse(strings.NewReader("P(a), P(a, b) |- Q"))
	require.Error(t, err)
	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, "P", string(arity.Sym))

	_, err = Parse(strings.NewReader("Q(f(a)) |- Q(f(a, b))"))
	require.Error(t, err)
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, "f", string(arity.Sym))

	// The same name may be a predicate and a constant: roles are
	// distinguished by context.
	_, err = Parse(strings.NewReader("P(a), a |- a"))
	assert.NoError(t, err)
}
