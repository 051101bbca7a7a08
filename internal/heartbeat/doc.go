// Package heartbeat implements the dots command, which drives the dot indicator on a fixed
// interval to show that a long-running shell step is still alive.
package heartbeat
