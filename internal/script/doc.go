// Package script replays YAML-defined sequences of emitted lines and dot-indicator ticks.
//
// Each tick step names the counter it advances, so several independent indicator runs can be
// interleaved within one script.
package script
