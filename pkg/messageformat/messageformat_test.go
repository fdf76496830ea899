package messageformat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localebot/pkg/messageformat"
)

func oneOther(n float64) []string {
	if n == 1 {
		return []string{"one", "other"}
	}
	return []string{"other"}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		params map[string]any
		want   string
	}{
		{"plain text", "Hello", nil, "Hello"},
		{"argument", "Hello {name}!", map[string]any{"name": "Maija"}, "Hello Maija!"},
		{"hash outside plural is literal", "#1", nil, "#1"},
		{"escaped braces", `\{not an arg\}`, nil, "{not an arg}"},
		{"plural one", "{N, plural, one {# viesti} other {# viestiä}}", map[string]any{"N": 1}, "1 viesti"},
		{"plural other", "{N, plural, one {# viesti} other {# viestiä}}", map[string]any{"N": 4}, "4 viestiä"},
		{"plural exact", "{N, plural, =0 {ei viestejä} one {# viesti} other {# viestiä}}", map[string]any{"N": 0}, "ei viestejä"},
		{"plural bare exact", "{N, plural, 0 {none} other {#}}", map[string]any{"N": 0}, "none"},
		{"plural string count", "{N, plural, one {one} other {# many}}", map[string]any{"N": "7"}, "7 many"},
		{"plural offset", "{N, plural, offset:1 =0 {nobody} =1 {you} one {you and # other} other {you and # others}}", map[string]any{"N": 2}, "you and 1 other"},
		{"select", "{G, select, male {he} female {she} other {they}}", map[string]any{"G": "female"}, "she"},
		{"select other", "{G, select, male {he} other {they}}", map[string]any{"G": "x"}, "they"},
		{"select bool", "{BOTH, select, true {ja } false {} other {}}uusi", map[string]any{"BOTH": true}, "ja uusi"},
		{"nested", "{A, plural, one {{B, select, x {# x} other {# y}}} other {#}}", map[string]any{"A": 1, "B": "x"}, "1 x"},
		{"number type", "{N, number} kpl", map[string]any{"N": 3}, "3 kpl"},
		{"html quotes", "<a href='{basePath}/new'>uusi</a>", map[string]any{"basePath": "/forum"}, "<a href='/forum/new'>uusi</a>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := messageformat.Parse(tt.src)
			require.NoError(t, err)
			got, err := m.Format(tt.params, oneOther)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing parameter", func(t *testing.T) {
		t.Parallel()
		m := messageformat.MustParse("Hi {name}")
		_, err := m.Format(nil, nil)
		require.ErrorIs(t, err, messageformat.ErrMissingParam)
	})

	t.Run("no branch", func(t *testing.T) {
		t.Parallel()
		m := messageformat.MustParse("{N, plural, one {x}}")
		_, err := m.Format(map[string]any{"N": 5}, oneOther)
		require.ErrorIs(t, err, messageformat.ErrNoBranch)
	})

	t.Run("non numeric plural", func(t *testing.T) {
		t.Parallel()
		m := messageformat.MustParse("{N, plural, other {#}}")
		_, err := m.Format(map[string]any{"N": []int{1}}, oneOther)
		require.Error(t, err)
	})

	t.Run("nil categories means other", func(t *testing.T) {
		t.Parallel()
		m := messageformat.MustParse("{N, plural, one {x} other {y}}")
		got, err := m.Format(map[string]any{"N": 1}, nil)
		require.NoError(t, err)
		require.Equal(t, "y", got)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"{",
		"}",
		"{name",
		"{, plural, other {x}}",
		"{N, plural, other {x}",
		"{N, plural, }",
		"{N, select, a b}",
		"{N,}",
	} {
		_, err := messageformat.Parse(src)
		var syntaxErr *messageformat.SyntaxError
		require.ErrorAs(t, err, &syntaxErr, src)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	src := "{N, plural, other {#}}"
	require.Equal(t, src, messageformat.MustParse(src).String())
}
