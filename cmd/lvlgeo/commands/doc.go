// Package commands wires the lvlgeo CLI: one constructor per
// subcommand, persistent flags and configuration resolved once in the
// root command's PersistentPreRunE.
//
// Configuration precedence, highest first: explicit flags, LVLGEO_*
// environment variables, the YAML config file (--config, ./lvlgeo.yaml,
// or $HOME/.lvlgeo/lvlgeo.yaml), built-in defaults.
package commands
