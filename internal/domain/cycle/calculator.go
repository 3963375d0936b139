// internal/domain/cycle/calculator.go
package cycle

// DefaultCycleLengthDays is used until there are at least two recorded starts.
const DefaultCycleLengthDays = 28

// Prediction is derived from a History on every load and add. It is never persisted.
type Prediction struct {
	AverageCycleLengthDays int
	PredictedNextDate      Date
	HasPrediction          bool // false iff the history is empty
}

// AverageCycleLength is the arithmetic mean of the gaps between consecutive
// starts, rounded half up. Fewer than two records yield DefaultCycleLengthDays.
// The history must be ascending.
func AverageCycleLength(h History) int {
	if len(h) < 2 {
		return DefaultCycleLengthDays
	}
	total := 0
	for i := 1; i < len(h); i++ {
		total += h[i-1].DaysUntil(h[i])
	}
	n := len(h) - 1
	// floor((total/n) + 1/2); total is never negative for an ascending history
	return (2*total + n) / (2 * n)
}

// PredictNext adds avg days to the most recent start. It reports false when
// the history is empty.
func PredictNext(h History, avg int) (Date, bool) {
	last, ok := h.Last()
	if !ok {
		return Date{}, false
	}
	return last.AddDays(avg), true
}

// Compute returns the full prediction for h.
func Compute(h History) Prediction {
	avg := AverageCycleLength(h)
	next, ok := PredictNext(h, avg)
	return Prediction{
		AverageCycleLengthDays: avg,
		PredictedNextDate:      next,
		HasPrediction:          ok,
	}
}
