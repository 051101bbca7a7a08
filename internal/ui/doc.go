// Package ui provides helpers for human-readable console output.
//
// LineEmitter prints severity-tagged lines wrapped in ANSI color escapes, and DotIndicator
// redraws a single line of accumulating dots to show liveness without emitting new lines.
// Escapes are always written; the helpers do not inspect the destination.
package ui
