// Package ui holds the colour themes shared by the line oriented CLI output
// and the terminal host. The active theme is process wide and selected once
// at startup by InitTheme.
package ui
