package market

import "fmt"

// IntegrityError reports a malformed bar sequence. The whole sequence is
// rejected; repairing individual bars would fabricate chart shape downstream.
type IntegrityError struct {
	Index  int    // offending bar position, -1 when the sequence itself is bad
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bar sequence integrity: %s", e.Reason)
	}
	return fmt.Sprintf("bar sequence integrity: bar %d: %s", e.Index, e.Reason)
}

// Validate checks the structural invariants of a bar sequence:
// positive prices, low <= open,close <= high, strictly increasing timestamps.
// Any violation rejects the entire sequence.
func Validate(bars []Bar) error {
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return &IntegrityError{Index: i, Reason: "non-positive price"}
		}
		if b.High < b.Low {
			return &IntegrityError{Index: i, Reason: fmt.Sprintf("high %.4f below low %.4f", b.High, b.Low)}
		}
		if b.Open < b.Low || b.Open > b.High {
			return &IntegrityError{Index: i, Reason: fmt.Sprintf("open %.4f outside [%.4f, %.4f]", b.Open, b.Low, b.High)}
		}
		if b.Close < b.Low || b.Close > b.High {
			return &IntegrityError{Index: i, Reason: fmt.Sprintf("close %.4f outside [%.4f, %.4f]", b.Close, b.Low, b.High)}
		}
		if b.Volume < 0 {
			return &IntegrityError{Index: i, Reason: "negative volume"}
		}
		if i > 0 && !bars[i-1].Timestamp.Before(b.Timestamp) {
			return &IntegrityError{Index: i, Reason: "timestamp not increasing"}
		}
	}
	return nil
}
