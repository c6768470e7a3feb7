// Package ui implements the gridclock screen with Bubble Tea.
//
// Core abstractions:
//   - View: a widget with its own Init/Update/View (Elm-style)
//   - Panel: a View placed in an Area of a GridLayout
//   - FocusManager: tracks focus across a ragged 2D grid of buttons
//   - Command: an action with pre-bound arguments, run on activation
//   - KeybindRegistry: maps keys to commands and feeds the help footer
package ui
