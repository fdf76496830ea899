package application

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"localebot/internal/domain/entities"
)

// placeholderRE matches {{name}} and %{name}; the second closing brace is optional.
var placeholderRE = regexp.MustCompile(`(?:\{\{|%\{)(.*?)(?:\}\}?)`)

// Interpolate substitutes placeholders in template with values from opts.
// Occurrences are handled left to right, each replacing the first remaining
// copy of its own text in the partially substituted string. Values are
// inserted literally.
// Missing values render as "[missing {{name}} value]".
func Interpolate(template string, opts ...entities.Options) string {
	matches := placeholderRE.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return template
	}
	o := entities.MergeOptions(opts...)

	message := template
	for _, m := range matches {
		placeholder, name := m[0], m[1]
		value := "[missing " + placeholder + " value]"
		if v, ok := o.Value(name); ok {
			value = stringify(v)
		}
		message = strings.Replace(message, placeholder, value, 1)
	}
	return message
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
