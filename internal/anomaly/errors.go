// Package anomaly implements the unsupervised transaction scorer: an
// isolation forest over a fixed feature vector, with immutable trained
// snapshots published atomically so scoring never blocks on retraining.
package anomaly

import "errors"

// ErrModelNotReady is returned when scoring is requested before any
// snapshot has been trained or loaded.
var ErrModelNotReady = errors.New("anomaly: model not ready, fit has not been called")

// InvalidInputError reports a malformed training or scoring input:
// empty batches, inconsistent feature dimensionality, unparseable rows.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "anomaly: invalid input: " + e.Reason
}

// IsInvalidInput reports whether err is an InvalidInputError anywhere
// in its chain.
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}
