package sheetimport

// Options configures interpretation behavior.
type Options struct {
	// ValidateChoices makes Interpret verify every choice-typed scalar
	// against its options after the merge and fail on a mismatch. The
	// default leaves values unchecked, matching how filled-in sheets are
	// accepted by the collection pipeline.
	ValidateChoices bool
}

// DefaultOptions returns the default interpretation options.
func DefaultOptions() Options {
	return Options{}
}
