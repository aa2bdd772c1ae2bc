package patch

// Coalesce dereferences ptr when set, falling back otherwise. Used for
// optional request fields carrying partial updates.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
