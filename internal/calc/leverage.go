package calc

import "math"

// Mode selects how the stop-loss distance is expressed.
type Mode string

const (
	// ModePrice derives the stop distance from entry and stop-loss prices.
	ModePrice Mode = "price"
	// ModePercent takes the stop distance directly as a percentage.
	ModePercent Mode = "percent"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModePrice || m == ModePercent
}

// LeverageInput carries the raw form values. Only the fields relevant to
// Mode are read.
type LeverageInput struct {
	Mode          Mode
	Balance       string
	Risk          string
	EntryPrice    string
	StopLossPrice string
	SLPercent     string
}

// LeverageResult is the derived sizing for one set of inputs.
type LeverageResult struct {
	Leverage        float64
	RoundedLeverage float64
	PositionSize    float64
	RiskPercent     float64
	// StopDistance is the stop-loss distance as a fraction of entry
	// (0.05 == 5%).
	StopDistance float64
}

// ComputeLeverage returns the position size and leverage needed so that
// hitting the stop loses exactly Risk. It returns nil whenever a required
// input is missing, zero or unparseable, and when the result is not finite
// (entry equal to stop-loss).
func ComputeLeverage(in LeverageInput) *LeverageResult {
	bal := ParseDecimal(in.Balance)
	risk := ParseDecimal(in.Risk)
	if isFalsy(bal) || isFalsy(risk) {
		return nil
	}

	var distance float64
	switch in.Mode {
	case ModePrice:
		entry := ParseDecimal(in.EntryPrice)
		sl := ParseDecimal(in.StopLossPrice)
		if isFalsy(entry) || isFalsy(sl) {
			return nil
		}
		distance = math.Abs(entry-sl) / entry
	case ModePercent:
		slp := ParseDecimal(in.SLPercent)
		if isFalsy(slp) {
			return nil
		}
		distance = slp / 100
	default:
		return nil
	}

	positionSize := risk / distance
	leverage := positionSize / bal
	if !isFinite(positionSize) || !isFinite(leverage) {
		return nil
	}

	return &LeverageResult{
		Leverage:        leverage,
		RoundedLeverage: math.Ceil(leverage),
		PositionSize:    positionSize,
		RiskPercent:     (risk / bal) * 100,
		StopDistance:    distance,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
