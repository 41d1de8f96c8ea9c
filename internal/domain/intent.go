package domain

// IntentName is one of the intents registered in the interaction model.
type IntentName string

const (
	IntentConstellations     IntentName = "ConstellationsIntent"
	IntentConstellationsMyth IntentName = "ConstellationsMythIntent"
	IntentGetMoreInfo        IntentName = "GetMoreInfoIntent"
	IntentStop               IntentName = "AMAZON.StopIntent"
	IntentCancel             IntentName = "AMAZON.CancelIntent"
	IntentHelp               IntentName = "AMAZON.HelpIntent"
)

// SlotConstellation is the slot carrying the spoken constellation name.
const SlotConstellation = "Constellation"

// AttrConstellationName is the session attribute remembering the last
// constellation the user asked about.
const AttrConstellationName = "constellationName"

type Intent struct {
	Name  IntentName      `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the raw value of the named slot. ok is false when the slot
// is missing or Alexa did not recognize a value for it.
func (i Intent) SlotValue(name string) (string, bool) {
	s, found := i.Slots[name]
	if !found {
		return "", false
	}
	return s.Value, s.Value != ""
}
