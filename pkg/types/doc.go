// Package types defines the core types and interfaces used throughout dolink.
// This includes the configuration model (Config, ConfigItem), the per-run
// InstallOptions, the InstallStep progress events and the Reporter and FS
// interfaces the engine is written against.
package types
