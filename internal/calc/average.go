package calc

import "math"

// Entry is one DCA buy: the amount invested and the tokens received, both
// kept as the decimal strings the user typed.
type Entry struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Tokens string `json:"tokens"`
}

// AverageResult aggregates every entry with a parseable amount and token
// count.
type AverageResult struct {
	TotalAmount  float64
	TotalTokens  float64
	AveragePrice float64
	// Counted is the number of entries that contributed.
	Counted int
}

// ComputeAverage sums the entries whose amount and tokens both parse and
// divides invested by tokens. Nil means nothing usable was entered or the
// token total is not positive.
func ComputeAverage(entries []Entry) *AverageResult {
	var res AverageResult
	for _, e := range entries {
		amount := ParseDecimal(e.Amount)
		tokens := ParseDecimal(e.Tokens)
		if math.IsNaN(amount) || math.IsNaN(tokens) {
			continue
		}
		res.TotalAmount += amount
		res.TotalTokens += tokens
		res.Counted++
	}

	if res.Counted == 0 || !(res.TotalTokens > 0) {
		return nil
	}

	res.AveragePrice = res.TotalAmount / res.TotalTokens
	return &res
}

// TruncateAverage cuts p to six decimal places, always toward negative
// infinity, so a displayed average never overstates the real one.
func TruncateAverage(p float64) float64 {
	return math.Floor(p*1e6) / 1e6
}
