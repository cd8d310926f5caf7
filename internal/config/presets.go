package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		States: 4, Width: 128, Indexing: "difference",
		Table: "0223302003331222121130103120000103211332113202133",
	},
	"wide": {
		States: 4, Width: 192, Indexing: "difference",
	},
	"trinary": {
		States: 3, Width: 128, Indexing: "difference",
		Table: "2101201002122101201021001",
	},
	"hexa": {
		States: 6, Width: 128, Indexing: "comparison",
		Table: "024135502",
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the rule-defining fields of preset onto c.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	c.States = p.States
	c.Width = p.Width
	c.Indexing = p.Indexing
	c.Table = p.Table
	return true
}
