// Package flags provides pflag values and usage helpers shared by the colorline commands.
package flags
