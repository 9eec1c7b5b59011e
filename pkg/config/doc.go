// Package config loads the dotfiles configuration file and the tool's own
// settings.
//
// The configuration file describes items: named groups of file mappings with
// optional before/after hooks. It is TOML by default; files ending in .yaml or
// .yml are read as YAML. Items live under the `dotfiles` table, with `d`
// accepted as a short alias:
//
//	version = 1
//
//	[dotfiles.zsh]
//	mappings = ["./zsh/zshrc:~/.zshrc"]
//	before = ["mkdir -p ~/.cache/zsh"]
//
// Settings are layered with koanf: built-in defaults, then the settings file
// in the XDG config directory, then DOLINK_* environment variables.
package config
