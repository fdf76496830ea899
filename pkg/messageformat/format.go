package messageformat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingParam is returned when a message refers to a parameter the caller
// did not supply.
var ErrMissingParam = errors.New("messageformat: missing parameter")

// ErrNoBranch is returned when neither the selected key nor "other" exists.
var ErrNoBranch = errors.New("messageformat: no matching branch")

// CategoryFunc returns candidate plural category keys for a count, most
// specific first.
type CategoryFunc func(n float64) []string

// Format renders the message. categories picks plural branches; nil means
// every count is "other".
func (m *Message) Format(params map[string]any, categories CategoryFunc) (string, error) {
	if categories == nil {
		categories = func(float64) []string { return []string{"other"} }
	}
	var b strings.Builder
	st := &state{params: params, categories: categories}
	if err := m.render(st, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

type state struct {
	params     map[string]any
	categories CategoryFunc
	counts     []float64
}

func (m *Message) render(st *state, b *strings.Builder) error {
	for _, p := range m.parts {
		if err := p.format(st, b); err != nil {
			return err
		}
	}
	return nil
}

type part interface {
	format(st *state, b *strings.Builder) error
}

type text string

func (t text) format(_ *state, b *strings.Builder) error {
	b.WriteString(string(t))
	return nil
}

type hash struct{}

func (hash) format(st *state, b *strings.Builder) error {
	if len(st.counts) == 0 {
		b.WriteByte('#')
		return nil
	}
	b.WriteString(formatNumber(st.counts[len(st.counts)-1]))
	return nil
}

type argument struct {
	name string
}

func (a argument) format(st *state, b *strings.Builder) error {
	v, ok := st.params[a.name]
	if !ok || v == nil {
		return fmt.Errorf("%w %q", ErrMissingParam, a.name)
	}
	b.WriteString(fmt.Sprint(v))
	return nil
}

type selectExpr struct {
	cases map[string]*Message
	name  string
}

func (s selectExpr) format(st *state, b *strings.Builder) error {
	v, ok := st.params[s.name]
	if !ok || v == nil {
		return fmt.Errorf("%w %q", ErrMissingParam, s.name)
	}
	key := fmt.Sprint(v)
	msg, ok := s.cases[key]
	if !ok {
		msg, ok = s.cases["other"]
	}
	if !ok {
		return fmt.Errorf("%w for %s=%q", ErrNoBranch, s.name, key)
	}
	return msg.render(st, b)
}

type pluralExpr struct {
	cases  map[string]*Message
	name   string
	offset float64
}

func (p pluralExpr) format(st *state, b *strings.Builder) error {
	raw, ok := st.params[p.name]
	if !ok || raw == nil {
		return fmt.Errorf("%w %q", ErrMissingParam, p.name)
	}
	n, err := toFloat(raw)
	if err != nil {
		return fmt.Errorf("messageformat: parameter %q: %w", p.name, err)
	}

	exact := formatNumber(n)
	msg, ok := p.cases["="+exact]
	if !ok {
		msg, ok = p.cases[exact]
	}
	if !ok {
		for _, cat := range st.categories(math.Abs(n - p.offset)) {
			if msg, ok = p.cases[cat]; ok {
				break
			}
		}
	}
	if !ok {
		msg, ok = p.cases["other"]
	}
	if !ok {
		return fmt.Errorf("%w for %s=%s", ErrNoBranch, p.name, exact)
	}

	st.counts = append(st.counts, n-p.offset)
	defer func() { st.counts = st.counts[:len(st.counts)-1] }()
	return msg.render(st, b)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
