package grammar_test

import (
	"testing"

	"github.com/ghettovoice/vcard/internal/grammar"
)

func TestIsName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"FN", true},
		{"X-ABC-123", true},
		{"item1", true},
		{"-", true},
		{"TEL ", false},
		{"a.b", false},
		{"a_b", false},
		{"ТЕЛ", false},
	}

	for _, c := range cases {
		if got := grammar.IsName(c.in); got != c.want {
			t.Errorf("grammar.IsName(%q) = %v, want %v", c.in, got, c.want)
		}
		if got := grammar.IsName([]byte(c.in)); got != c.want {
			t.Errorf("grammar.IsName([]byte(%q)) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsQuoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{`"`, false},
		{`""`, true},
		{`"work"`, true},
		{`"a;b:c,d"`, true},
		{`"Ünïcødé"`, true},
		{`work`, false},
		{`"a"b`, false},
		{`"a""`, false},
		{`a"b"`, false},
	}

	for _, c := range cases {
		if got := grammar.IsQuoted(c.in); got != c.want {
			t.Errorf("grammar.IsQuoted(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsPText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"work", true},
		{"a b\tc", true},
		{"Ünïcødé", true},
		{"image/jpeg", true},
		{`a"b`, false},
		{"a;b", false},
		{"a:b", false},
		{"a,b", false},
	}

	for _, c := range cases {
		if got := grammar.IsPText(c.in); got != c.want {
			t.Errorf("grammar.IsPText(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
