package config

import "sort"

var Presets = map[string]map[string]*Config{
	"bubble": {
		"small": {
			Algorithm: "bubble", Size: 15, Min: 1, Max: 50, DelayMs: 150, Order: "random",
		},
		"reversed": {
			Algorithm: "bubble", Size: 25, Min: 1, Max: 100, DelayMs: 60, Order: "reversed",
		},
		"early-exit": {
			Algorithm: "bubble", Size: 30, Min: 1, Max: 100, DelayMs: 60, Order: "nearly-sorted",
		},
	},
	"selection": {
		"small": {
			Algorithm: "selection", Size: 15, Min: 1, Max: 50, DelayMs: 150, Order: "random",
		},
		"worst": {
			Algorithm: "selection", Size: 40, Min: 1, Max: 100, DelayMs: 40, Order: "reversed",
		},
	},
	"insertion": {
		"small": {
			Algorithm: "insertion", Size: 15, Min: 1, Max: 50, DelayMs: 150, Order: "random",
		},
		"best": {
			Algorithm: "insertion", Size: 40, Min: 1, Max: 100, DelayMs: 40, Order: "nearly-sorted",
		},
		"worst": {
			Algorithm: "insertion", Size: 30, Min: 1, Max: 100, DelayMs: 40, Order: "reversed",
		},
	},
	"merge": {
		"small": {
			Algorithm: "merge", Size: 16, Min: 1, Max: 50, DelayMs: 150, Order: "random",
		},
		"large": {
			Algorithm: "merge", Size: 80, Min: 1, Max: 200, DelayMs: 20, Order: "random",
		},
	},
	"quick": {
		"small": {
			Algorithm: "quick", Size: 15, Min: 1, Max: 50, DelayMs: 150, Order: "random",
		},
		"large": {
			Algorithm: "quick", Size: 80, Min: 1, Max: 200, DelayMs: 20, Order: "random",
		},
		"worst": {
			Algorithm: "quick", Size: 30, Min: 1, Max: 100, DelayMs: 40, Order: "sorted",
		},
	},
}

func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
