package domain

// Texts written into the train name field when no name is resolved.
const (
	TrainNotFoundText = "Train not found"
	LookupErrorText   = "Error fetching train name"
)

// Element identifiers on the reservation form.
const (
	TrainNumberElementID = "trainNumber"
	TrainNameElementID   = "trainName"
)

// EventBlur fires when an element loses focus.
const EventBlur = "blur"

// TrainLookup is the outcome of resolving one train number.
type TrainLookup struct {
	TrainNumber string
	TrainName   string
	Found       bool
}

// DisplayText is what the train name field shows for this lookup.
func (l TrainLookup) DisplayText() string {
	if !l.Found {
		return TrainNotFoundText
	}
	return l.TrainName
}
