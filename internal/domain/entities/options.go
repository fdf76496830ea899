package entities

// Options carries the per-call parameters of a translation.
type Options struct {
	// Params fills {{name}} and %{name} placeholders.
	Params map[string]any
	// DefaultValue is returned by lookups that find nothing.
	DefaultValue *string
	// Count selects the plural form and also fills {{count}}.
	Count *float64
	// Locale overrides the translator's current locale for one call.
	Locale string
	// Scope is prefixed to the key.
	Scope string

	NeedsPluralization bool
	IgnoreMissing      bool
}

// WithCount returns Options holding count.
func WithCount(n float64) Options {
	return Options{Count: &n}
}

// WithParams returns Options holding params.
func WithParams(params map[string]any) Options {
	return Options{Params: params}
}

// Value resolves a placeholder name. nil values count as missing.
func (o Options) Value(name string) (any, bool) {
	if v, ok := o.Params[name]; ok && v != nil {
		return v, true
	}
	if name == "count" && o.Count != nil {
		return *o.Count, true
	}
	return nil, false
}

// MergeOptions merges opts left to right; a value set by an earlier element
// is never replaced by a later one.
func MergeOptions(opts ...Options) Options {
	var out Options
	for _, o := range opts {
		if out.Locale == "" {
			out.Locale = o.Locale
		}
		if out.Scope == "" {
			out.Scope = o.Scope
		}
		if out.DefaultValue == nil {
			out.DefaultValue = o.DefaultValue
		}
		if out.Count == nil {
			out.Count = o.Count
		}
		out.NeedsPluralization = out.NeedsPluralization || o.NeedsPluralization
		out.IgnoreMissing = out.IgnoreMissing || o.IgnoreMissing
		for k, v := range o.Params {
			if v == nil {
				continue
			}
			if cur, ok := out.Params[k]; ok && cur != nil {
				continue
			}
			if out.Params == nil {
				out.Params = make(map[string]any, len(o.Params))
			}
			out.Params[k] = v
		}
	}
	return out
}
