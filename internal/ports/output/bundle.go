package output

import "localebot/internal/domain/entities"

// ExtrasStore receives the extras overlay searched after the bundle.
// Implementations must make the swap visible to concurrent readers.
type ExtrasStore interface {
	SetExtras(extras entities.Tree)
}
