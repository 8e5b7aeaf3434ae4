package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Atoms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want Value
	}{
		{"nil", "nil", Nil{}},
		{"true", "true", Boolean(true)},
		{"false", "false", Boolean(false)},
		{"integer", "42", Number(42)},
		{"negative integer", "-7", Number(-7)},
		{"float", "3.5", Number(3.5)},
		{"scientific notation", "1e3", Number(1000)},
		{"symbol", "foo", Symbol("foo")},
		{"operator symbol", "+", Symbol("+")},
		{"keyword", ":name", Keyword("name")},
		{"string", `"hello"`, String("hello")},
		{"string with escapes", `"a\nb\t\"c\""`, String("a\nb\t\"c\"")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseOne(tt.src)
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestParse_Lists(t *testing.T) {
	t.Parallel()

	t.Run("flat list", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOne("(+ 1 2)")
		require.NoError(t, err)
		want := NewList(Symbol("+"), Number(1), Number(2))
		assert.True(t, Equal(want, got))
	})

	t.Run("nested list", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOne("(a (b c) d)")
		require.NoError(t, err)
		want := NewList(
			Symbol("a"),
			NewList(Symbol("b"), Symbol("c")),
			Symbol("d"),
		)
		assert.True(t, Equal(want, got))
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOne("()")
		require.NoError(t, err)
		list, ok := got.(*List)
		require.True(t, ok)
		assert.Equal(t, 0, list.Len())
	})

	t.Run("commas are whitespace", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOne("(1, 2, 3)")
		require.NoError(t, err)
		want := NewList(Number(1), Number(2), Number(3))
		assert.True(t, Equal(want, got))
	})

	t.Run("comments are skipped", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOne("(+ 1 ; one\n 2) ; done")
		require.NoError(t, err)
		want := NewList(Symbol("+"), Number(1), Number(2))
		assert.True(t, Equal(want, got))
	})
}

func TestParse_MapLiteral(t *testing.T) {
	t.Parallel()

	t.Run("keyword keys", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOne(`{:a 1 :b "two"}`)
		require.NoError(t, err)
		m, ok := got.(*Map)
		require.True(t, ok)
		assert.Equal(t, 2, m.Len())

		v, found := m.Get(Keyword("a"))
		require.True(t, found)
		assert.True(t, Equal(Number(1), v))

		v, found = m.Get(Keyword("b"))
		require.True(t, found)
		assert.True(t, Equal(String("two"), v))
	})

	t.Run("odd number of forms is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ParseOne("{:a 1 :b}")
		require.Error(t, err)

		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr)
		assert.Contains(t, synErr.Msg, "even number")
	})
}

func TestParse_ReaderSugar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want Value
	}{
		{"quote", "'x", NewList(Symbol("quote"), Symbol("x"))},
		{"quote list", "'(1 2)", NewList(Symbol("quote"), NewList(Number(1), Number(2)))},
		{"quasiquote", "`x", NewList(Symbol("quasiquote"), Symbol("x"))},
		{"unquote", "~x", NewList(Symbol("unquote"), Symbol("x"))},
		{"unquote-splicing", "~@xs", NewList(Symbol("unquote-splicing"), Symbol("xs"))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseOne(tt.src)
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"unterminated list", "(+ 1 2"},
		{"stray close paren", ")"},
		{"unterminated map", "{:a 1"},
		{"stray close brace", "}"},
		{"unterminated string", `"abc`},
		{"invalid escape", `"a\qb"`},
		{"empty keyword", ":"},
		{"quote without form", "'"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOne(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestParse_MultipleForms(t *testing.T) {
	t.Parallel()

	t.Run("parse returns all forms in order", func(t *testing.T) {
		t.Parallel()
		forms, err := Parse("1 2 (+ 1 2)")
		require.NoError(t, err)
		require.Len(t, forms, 3)
		assert.True(t, Equal(Number(1), forms[0]))
		assert.True(t, Equal(Number(2), forms[1]))
	})

	t.Run("parse one rejects multiple forms", func(t *testing.T) {
		t.Parallel()
		_, err := ParseOne("1 2")
		require.Error(t, err)

		var synErr *SyntaxError
		assert.ErrorAs(t, err, &synErr)
	})

	t.Run("parse one rejects empty input", func(t *testing.T) {
		t.Parallel()
		_, err := ParseOne("   ; nothing here\n")
		assert.Error(t, err)
	})

	t.Run("syntax error carries position", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("(a\n b })")
		require.Error(t, err)

		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr)
		assert.Equal(t, 2, synErr.Line)
	})
}
