package nullable

// String maps nil and "" to nil so optional text columns store NULL.
func String(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// Equal reports whether two optional strings hold the same value.
func Equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
