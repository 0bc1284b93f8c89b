package knowledge

import "github.com/voltquote/voltquote/internal/model"

// DefaultPatterns returns the built-in electrical installation sequences.
// Each rule names the items that typically follow once a trigger item
// appears in a draft, in the order an electrician would install them.
func DefaultPatterns() []model.Pattern {
	return []model.Pattern{
		{
			Name:           "Room wiring",
			Triggers:       []string{"light point", "tube light", "led light"},
			Sequence:       []string{"Fan point", "Two way point", "Plug point", "Switch board"},
			BaseConfidence: 0.85,
		},
		{
			Name:           "Fan installation",
			Triggers:       []string{"fan point", "ceiling fan"},
			Sequence:       []string{"Fan regulator", "Fan hook", "Light point"},
			BaseConfidence: 0.85,
		},
		{
			Name:           "Power circuit",
			Triggers:       []string{"plug point", "power point", "socket"},
			Sequence:       []string{"Power plug point 16A", "Switch board", "MCB", "Wire coil"},
			BaseConfidence: 0.80,
		},
		{
			Name:           "Switch board assembly",
			Triggers:       []string{"switch board", "switchboard", "modular board"},
			Sequence:       []string{"Switch", "Socket", "Indicator", "Fan regulator"},
			BaseConfidence: 0.80,
		},
		{
			Name:           "Main supply",
			Triggers:       []string{"main switch", "mcb", "distribution board", "db box"},
			Sequence:       []string{"MCB", "ELCB", "Earthing", "Wire coil", "Meter board"},
			BaseConfidence: 0.90,
		},
		{
			Name:           "Concealed wiring",
			Triggers:       []string{"concealed wiring", "conduit", "pipe wiring"},
			Sequence:       []string{"PVC conduit", "Wire coil", "Junction box", "Fan box", "Switch board"},
			BaseConfidence: 0.80,
		},
		{
			Name:           "Earthing work",
			Triggers:       []string{"earthing", "earth pit", "grounding"},
			Sequence:       []string{"Earthing rod", "Earth wire", "ELCB"},
			BaseConfidence: 0.85,
		},
		{
			Name:           "Water heating",
			Triggers:       []string{"geyser", "water heater"},
			Sequence:       []string{"Power plug point 16A", "MCB", "Earthing"},
			BaseConfidence: 0.80,
		},
		{
			Name:           "Cooling appliances",
			Triggers:       []string{"ac point", "air conditioner", "cooler point"},
			Sequence:       []string{"Power plug point 16A", "MCB", "Stabilizer point", "Earthing"},
			BaseConfidence: 0.80,
		},
		{
			Name:           "Exterior lighting",
			Triggers:       []string{"gate light", "garden light", "outdoor light"},
			Sequence:       []string{"Weatherproof fitting", "PVC conduit", "Wire coil", "Two way point"},
			BaseConfidence: 0.75,
		},
		{
			Name:           "Doorbell circuit",
			Triggers:       []string{"door bell", "doorbell", "calling bell"},
			Sequence:       []string{"Bell push", "Transformer", "Wire coil"},
			BaseConfidence: 0.75,
		},
		{
			Name:           "TV and network",
			Triggers:       []string{"tv point", "cable point", "lan point", "network point"},
			Sequence:       []string{"Coaxial cable", "Junction box", "Plug point"},
			BaseConfidence: 0.70,
		},
	}
}
