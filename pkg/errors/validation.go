package errors

import (
	"strings"
	"unicode"
)

// maxWordLength bounds query words well above anything in WordNet, whose
// longest entries are multi-word collocations around 50 characters.
const maxWordLength = 256

// ValidateWord validates a noun argument before it reaches the lexicon.
// It rejects input that could never be a dictionary entry, so lookup code
// only ever deals with plausible words.
//
// The validation rules are intentionally conservative:
//   - No empty words
//   - No control characters
//   - No whitespace (multi-word collocations use underscores in the dataset)
//   - Maximum length of 256 characters
//
// Whether the word actually exists in the loaded dataset is a separate
// question answered by the lexicon itself.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}

	if len(word) > maxWordLength {
		return New(ErrCodeInvalidWord, "word too long (max %d characters)", maxWordLength)
	}

	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWord, "word contains control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidWord, "word cannot contain whitespace")
		}
	}

	return nil
}

// ValidateWords validates a list of noun arguments, reporting the first
// invalid one.
func ValidateWords(words []string) error {
	if len(words) == 0 {
		return New(ErrCodeInvalidInput, "at least one word is required")
	}
	for _, w := range words {
		if err := ValidateWord(w); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDatasetPath validates a dataset file path supplied by the user.
// It prevents obviously malformed input; whether the file exists is checked
// when it is opened.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateDatasetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidDataset, "dataset path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidDataset, "dataset path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "dataset path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputFormat checks a requested output format against the set a
// command supports.
func ValidateOutputFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)",
		format, strings.Join(supported, ", "))
}
