package port

// Sanitizer is an interface to define HTML sanitization of user input.
// StripAll removes all markup; StripToAllowed keeps the rich-text subset
// permitted in video descriptions (b, i, em, strong, a with href).
type Sanitizer interface {
	StripAll(s string) string
	StripToAllowed(s string) string
}
