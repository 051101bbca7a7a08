// Package announce implements the print command, which emits a single tagged, colorized line
// built from command-line arguments.
package announce
