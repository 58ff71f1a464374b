package sanitizer

import (
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/microcosm-cc/bluemonday"
)

// Adapter sanitizes user-supplied HTML with bluemonday. StripAll removes all
// markup (titles, comment bodies); StripToAllowed keeps the rich-text subset
// permitted in descriptions.
type Adapter struct {
	strict  *bluemonday.Policy
	allowed *bluemonday.Policy
}

// NewAdapter builds the two policies once; bluemonday policies are safe for
// concurrent use.
func NewAdapter() *Adapter {
	strict := bluemonday.StrictPolicy()
	strict.SkipElementsContent("script", "style")

	allowed := bluemonday.NewPolicy()
	allowed.AllowElements("b", "i", "em", "strong")
	allowed.AllowAttrs("href").OnElements("a")
	allowed.AllowStandardURLs()
	allowed.SkipElementsContent("script", "style")

	return &Adapter{strict: strict, allowed: allowed}
}

func (a *Adapter) StripAll(s string) string {
	return a.strict.Sanitize(s)
}

func (a *Adapter) StripToAllowed(s string) string {
	return a.allowed.Sanitize(s)
}

var _ port.Sanitizer = (*Adapter)(nil)
