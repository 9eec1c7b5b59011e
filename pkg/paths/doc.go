// Package paths provides centralized path handling for dolink.
//
// Two resolution modes exist:
//
//   - Resolve is purely lexical. It expands ~/, anchors relative paths at
//     the working directory and folds "." and ".." segments. Link sources and
//     destinations go through it, since destinations usually do not exist yet.
//   - Canonicalize requires the path to exist and evaluates symlinks. It is
//     used for the configuration file argument only.
//
// Both expand ~ from the HOME environment variable; an unset HOME is an error
// whenever expansion is needed.
//
// # XDG Base Directory Structure
//
//   - State: $XDG_STATE_HOME/dolink (log file)
//   - Config: $XDG_CONFIG_HOME/dolink/settings.toml (tool settings)
package paths
