package scoring

import "github.com/vitalscope/vitalscope/pkg/health"

// WaterFactor awards up to 25 points for hydration.
type WaterFactor struct{}

func (f *WaterFactor) Key() string  { return "water" }
func (f *WaterFactor) Name() string { return "Water" }

func (f *WaterFactor) Evaluate(rec health.MetricRecord) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name(), Max: 25}

	l := rec.WaterLitres
	switch {
	case l >= 2.0:
		result.Points = 25
	case l >= 1.5:
		result.Points = 15
	case l > 0:
		result.Points = 5
	}

	if result.Points == result.Max {
		result.Feedback = "You're well hydrated."
	} else {
		result.Feedback = "Drink more water; at least 2 litres a day."
	}

	return result
}
