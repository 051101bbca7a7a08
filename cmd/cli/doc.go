// Package cli builds the colorline command-line interface: the Cobra root command with its
// print, dots, and script subcommands, layered Viper configuration seeded from an embedded
// default file, and the zap diagnostics logger shared by every command.
package cli
