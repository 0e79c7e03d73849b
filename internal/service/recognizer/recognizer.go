// Package recognizer talks to the external ALPR inference service. The
// model itself is a black box behind an HTTP contract: image in, best
// plate candidate out.
package recognizer

// Result is one recognition outcome. Text is empty when the image was
// readable but contained no license plate; Confidence is a 0-100
// percentage, present only when Text is.
type Result struct {
	Text       string
	Confidence *int
}
