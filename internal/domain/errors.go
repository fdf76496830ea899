package domain

import "errors"

// Domain errors.
var (
	ErrEmptyLocale       = errors.New("locale cannot be empty")
	ErrUnknownLocale     = errors.New("locale is not part of the bundle")
	ErrEmptyKey          = errors.New("translation key cannot be empty")
	ErrExtraNotFound     = errors.New("translation extra not found")
	ErrInvalidBundleFile = errors.New("invalid locale bundle file")
	ErrMalformedTemplate = errors.New("malformed message format template")
	ErrUnknownTimezone   = errors.New("unknown timezone")
	ErrNotAdministrator  = errors.New("only administrators can change translations")
	ErrExtraValueEmpty   = errors.New("extra value cannot be empty")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrEmptyLocale, "empty_locale"},
	{ErrUnknownLocale, "unknown_locale"},
	{ErrEmptyKey, "empty_key"},
	{ErrExtraNotFound, "extra_not_found"},
	{ErrInvalidBundleFile, "invalid_bundle_file"},
	{ErrMalformedTemplate, "malformed_template"},
	{ErrUnknownTimezone, "unknown_timezone"},
	{ErrNotAdministrator, "not_administrator"},
	{ErrExtraValueEmpty, "extra_value_empty"},
}

// Code returns the stable code of the first domain error found in err's chain,
// or "" when err does not wrap a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
