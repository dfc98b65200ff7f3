package recycling

// Conversion factors per kilogram of recycled electronics.
const (
	UnitWeightKg        = 3.0
	co2PerKg            = 60.0
	energyKWhPerKg      = 15.0
	waterLitersPerKg    = 500.0
	treesPreservedPerKg = 0.05
)

// Impact is the environmental benefit of recycling a given weight.
type Impact struct {
	WeightKg       float64
	CO2AvoidedKg   float64
	EnergySavedKWh float64
	WaterSavedL    float64
	TreesPreserved float64
}

// ImpactOf is deterministic and has no side effects.
func ImpactOf(weightKg float64) Impact {
	return Impact{
		WeightKg:       weightKg,
		CO2AvoidedKg:   weightKg * co2PerKg,
		EnergySavedKWh: weightKg * energyKWhPerKg,
		WaterSavedL:    weightKg * waterLitersPerKg,
		TreesPreserved: weightKg * treesPreservedPerKg,
	}
}

// EstimatedWeightKg is the weight assumed for a number of items before the
// partner weighs them.
func EstimatedWeightKg(items int) float64 {
	return float64(items) * UnitWeightKg
}

// Add sums two impacts.
func (i Impact) Add(other Impact) Impact {
	return Impact{
		WeightKg:       i.WeightKg + other.WeightKg,
		CO2AvoidedKg:   i.CO2AvoidedKg + other.CO2AvoidedKg,
		EnergySavedKWh: i.EnergySavedKWh + other.EnergySavedKWh,
		WaterSavedL:    i.WaterSavedL + other.WaterSavedL,
		TreesPreserved: i.TreesPreserved + other.TreesPreserved,
	}
}
