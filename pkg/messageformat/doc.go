// Package messageformat parses and evaluates ICU-style messages used for
// sentences with several counts or choices, for example
//
//	{UNREAD, plural, =0 {} one {1 unread} other {# unread}} {NEW, plural, one {and 1 new} other {and # new}}
//
// Supported syntax: literal text, {name}, {name, select, key {...} other {...}},
// {name, plural, [offset:N] =N {...} category {...} other {...}} and '#'
// inside plural branches. Plural categories come from a CategoryFunc so the
// package stays independent of any locale table.
//
// A message is parsed once and can be formatted any number of times from
// multiple goroutines.
package messageformat
