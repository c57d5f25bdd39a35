// Package tui implements the terminal signup form.
//
// The form is a Bubble Tea program. Field state (values, touched flags and
// messages) lives in a form.Coordinator; this package only turns key events
// into coordinator calls and renders what the coordinator says is visible.
package tui
