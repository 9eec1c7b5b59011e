package types

import "sort"

// Config is the validated dotfiles configuration. It is loaded once per run
// and treated as read-only afterwards; workers read it concurrently.
type Config struct {
	Version int
	Items   map[string]ConfigItem
}

// ConfigItem is one named, independently installable group of links and hooks.
//
// Mappings are "source:destination" strings applied in order. Before and
// After are nil when the item declares no hooks for that phase.
type ConfigItem struct {
	Mappings []string `toml:"mappings" yaml:"mappings"`
	Before   []string `toml:"before,omitempty" yaml:"before,omitempty"`
	After    []string `toml:"after,omitempty" yaml:"after,omitempty"`
}

// HasItem reports whether name is a configured item
func (c *Config) HasItem(name string) bool {
	_, ok := c.Items[name]
	return ok
}

// ItemNames returns all item names in sorted order
func (c *Config) ItemNames() []string {
	names := make([]string, 0, len(c.Items))
	for name := range c.Items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
