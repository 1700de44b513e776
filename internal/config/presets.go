package config

// Presets are starting views keyed by function, then preset name.
var Presets = map[string]map[string]ViewConfig{
	"square": {
		"vertex": {Zoom: 4, Axis: true},
		"wide":   {Zoom: 0.25, CenterY: 40},
	},
	"sin": {
		"period": {Zoom: 0.5, Axis: true},
		"crest":  {CenterX: 6.28, CenterY: 10, Zoom: 2},
	},
	"circle": {
		"close": {Zoom: 16, Axis: true},
		"tiny":  {Zoom: 1},
	},
	"spiral": {
		"core":  {Zoom: 4, Axis: true},
		"outer": {Zoom: 0.5},
	},
	"exp": {
		"origin": {Zoom: 8, Axis: true},
	},
	"rose": {
		"petals": {Zoom: 2, Axis: true},
	},
}

// GetPreset returns a copy of cfg with the named preset applied, or nil if
// the function has no such preset.
func GetPreset(cfg *Config, function, name string) *Config {
	presets, ok := Presets[function]
	if !ok {
		return nil
	}
	view, ok := presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Function = function
	out.View = view
	return &out
}

func ListPresets(function string) []string {
	presets, ok := Presets[function]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
