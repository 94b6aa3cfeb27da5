package extract

import (
	"regexp"
	"strings"
)

// Metadata describes the extracted text of a context file.
type Metadata struct {
	WordCount      int
	CharacterCount int
	HasNumbers     bool
	HasEmails      bool
	HasURLs        bool
}

var (
	numberPattern = regexp.MustCompile(`\d`)
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	urlPattern    = regexp.MustCompile(`https?://\S+`)
)

// ComputeMetadata derives word/character counts and content-presence
// flags from extracted text.
func ComputeMetadata(text string) Metadata {
	return Metadata{
		WordCount:      len(strings.Fields(text)),
		CharacterCount: len(text),
		HasNumbers:     numberPattern.MatchString(text),
		HasEmails:      emailPattern.MatchString(text),
		HasURLs:        urlPattern.MatchString(text),
	}
}
