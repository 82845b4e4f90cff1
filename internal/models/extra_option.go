package models

// ExtraOption is a named add-on with a flat per-day surcharge. The catalog is
// static reference data; bookings only persist the chosen option key.
type ExtraOption string

const (
	ExtraOptionNone      ExtraOption = "none"
	ExtraOptionGPS       ExtraOption = "gps"
	ExtraOptionChildSeat ExtraOption = "child"
	ExtraOptionInsurance ExtraOption = "insurance"
	ExtraOptionChauffeur ExtraOption = "chauffeur"
)

var extraOptionRates = map[ExtraOption]float64{
	ExtraOptionNone:      0,
	ExtraOptionGPS:       5,
	ExtraOptionChildSeat: 3,
	ExtraOptionInsurance: 10,
	ExtraOptionChauffeur: 50,
}

func (o ExtraOption) IsValid() bool {
	_, exists := extraOptionRates[o]
	return exists
}

// PerDayRate returns the surcharge per rental day. Unknown options price at
// zero, same as "none".
func (o ExtraOption) PerDayRate() float64 {
	return extraOptionRates[o]
}

func ExtraOptions() []ExtraOption {
	return []ExtraOption{
		ExtraOptionNone,
		ExtraOptionGPS,
		ExtraOptionChildSeat,
		ExtraOptionInsurance,
		ExtraOptionChauffeur,
	}
}
