package config

import "sort"

var Presets = map[string]*Config{
	"square": {
		Window:     WindowConfig{Width: 800, Height: 800, Title: DefaultTitle},
		FPS:        60,
		Background: DefaultBackground,
	},
	"1080p": {
		Window:     WindowConfig{Width: 1920, Height: 1080, Title: DefaultTitle},
		FPS:        60,
		Overlay:    true,
		Background: DefaultBackground,
	},
	"720p": {
		Window:     WindowConfig{Width: 1280, Height: 720, Title: DefaultTitle},
		FPS:        60,
		Overlay:    true,
		Background: DefaultBackground,
	},
	"calm": {
		Window:      WindowConfig{Width: 800, Height: 800, Title: DefaultTitle},
		FPS:         30,
		NoiseSeed:   1,
		SparkleSeed: 1,
		Background:  "#05010a",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
