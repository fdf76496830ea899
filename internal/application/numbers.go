package application

import (
	"math"
	"strconv"
	"strings"

	"localebot/internal/domain/entities"
)

const kilobyte = 1024

var storageUnits = [...]string{"", "kb", "mb", "gb", "tb"}

type numberFormat struct {
	separator string
	delimiter string
	format    string
	precision int
	strip     bool
}

// NumberOption adjusts number formatting for one call.
type NumberOption func(*numberFormat)

// WithPrecision sets the number of fraction digits.
func WithPrecision(n int) NumberOption {
	return func(f *numberFormat) {
		if n >= 0 {
			f.precision = n
		}
	}
}

// WithSeparator sets the fraction separator.
func WithSeparator(s string) NumberOption {
	return func(f *numberFormat) { f.separator = s }
}

// WithDelimiter sets the thousands delimiter.
func WithDelimiter(s string) NumberOption {
	return func(f *numberFormat) { f.delimiter = s }
}

// WithStripInsignificantZeros drops trailing fraction zeros and a dangling separator.
func WithStripInsignificantZeros(strip bool) NumberOption {
	return func(f *numberFormat) { f.strip = strip }
}

// WithFormat sets the human size layout; %n is the number and %u the unit.
func WithFormat(layout string) NumberOption {
	return func(f *numberFormat) { f.format = layout }
}

// ToNumber formats n with digit grouping. Settings come from the call, then
// from the bundle's number.format, then from the built-in defaults.
func (t *Translator) ToNumber(n float64, opts ...NumberOption) string {
	f := t.numberFormat()
	for _, opt := range opts {
		opt(&f)
	}
	return f.render(n)
}

// ToHumanSize formats a byte count using the largest unit up to terabytes.
// Whole units have no fraction digits, others have one.
func (t *Translator) ToHumanSize(n float64) string {
	return t.ToHumanSizeWith(n)
}

// ToHumanSizeWith is ToHumanSize with formatting overrides.
func (t *Translator) ToHumanSizeWith(n float64, opts ...NumberOption) string {
	return t.humanSize(t.Translate, n, opts...)
}

// translateFunc renders unit names, so decorators see those lookups too.
type translateFunc func(scope string, opts ...entities.Options) string

func (t *Translator) humanSize(translate translateFunc, n float64, opts ...NumberOption) string {
	size := n
	iterations := 0
	for size >= kilobyte && iterations < len(storageUnits)-1 {
		size /= kilobyte
		iterations++
	}

	const units = "number.human.storage_units.units."
	var unit string
	precision := 0
	if iterations == 0 {
		unit = translate(units+"byte", entities.WithCount(size))
	} else {
		unit = translate(units + storageUnits[iterations])
		if size != math.Floor(size) {
			precision = 1
		}
	}

	f := t.numberFormat()
	f.precision = precision
	f.delimiter = ""
	f.format = "%n%u"
	if layout := t.Lookup("number.human.storage_units.format"); layout.Kind() == entities.KindLeaf {
		f.format = layout.Text()
	}
	for _, opt := range opts {
		opt(&f)
	}

	out := strings.Replace(f.format, "%u", unit, 1)
	return strings.Replace(out, "%n", f.render(size), 1)
}

func (t *Translator) numberFormat() numberFormat {
	f := numberFormat{precision: 3, separator: Separator, delimiter: ","}
	node := t.Lookup("number.format")
	if node.Kind() != entities.KindBranch {
		return f
	}
	if v := node.Child("precision"); v.Kind() == entities.KindLeaf {
		if p, err := strconv.Atoi(v.Text()); err == nil && p >= 0 {
			f.precision = p
		}
	}
	if v := node.Child("separator"); v.Kind() == entities.KindLeaf {
		f.separator = v.Text()
	}
	if v := node.Child("delimiter"); v.Kind() == entities.KindLeaf {
		f.delimiter = v.Text()
	}
	if v := node.Child("strip_insignificant_zeros"); v.Kind() == entities.KindLeaf {
		f.strip, _ = strconv.ParseBool(v.Text())
	}
	return f
}

func (f numberFormat) render(n float64) string {
	negative := n < 0
	digits := strconv.FormatFloat(math.Abs(n), 'f', f.precision, 64)
	intPart, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(intPart, f.delimiter))

	if f.precision > 0 {
		if f.strip {
			frac = strings.TrimRight(frac, "0")
		}
		if frac != "" {
			b.WriteString(f.separator)
			b.WriteString(frac)
		}
	}
	return b.String()
}

// groupDigits inserts delimiter every three digits from the right.
func groupDigits(digits, delimiter string) string {
	if len(digits) <= 3 || delimiter == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
