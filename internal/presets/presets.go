// internal/presets/presets.go
//
// Named difficulty presets. Every preset stays inside the core's
// validation envelope (square boards, mine cap of dim²/3), so a preset
// can always be handed straight to game.NewGame.

package presets

// Preset is a named board configuration.
type Preset struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
	Mines     int    `json:"mines"`
}

var all = []Preset{
	{Name: "beginner", Dimension: 9, Mines: 10},
	{Name: "intermediate", Dimension: 16, Mines: 40},
	{Name: "expert", Dimension: 20, Mines: 99},
}

// All returns the presets in difficulty order.
func All() []Preset {
	out := make([]Preset, len(all))
	copy(out, all)
	return out
}

// ByName looks up a preset; ok is false for unknown names.
func ByName(name string) (Preset, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Default is the configuration used when a client asks for a new game
// without parameters.
func Default() Preset { return all[0] }
