package types

// Pollutant identifies one of the pollutants the model predicts.
type Pollutant string

const (
	PollutantPM25 Pollutant = "PM2.5"
	PollutantPM10 Pollutant = "PM10"
	PollutantO3   Pollutant = "O3"
	PollutantNO2  Pollutant = "NO2"
	PollutantCO   Pollutant = "CO"
	PollutantSO2  Pollutant = "SO2"
)

// Pollutants returns every known pollutant in canonical response order.
func Pollutants() []Pollutant {
	return []Pollutant{
		PollutantPM25,
		PollutantPM10,
		PollutantO3,
		PollutantNO2,
		PollutantCO,
		PollutantSO2,
	}
}

// IsValid reports whether p names a known pollutant.
func (p Pollutant) IsValid() bool {
	switch p {
	case PollutantPM25, PollutantPM10, PollutantO3, PollutantNO2, PollutantCO, PollutantSO2:
		return true
	}
	return false
}

// Concentrations maps each pollutant to a predicted concentration.
// Values are never negative.
type Concentrations map[Pollutant]float64
