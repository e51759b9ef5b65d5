// Package ui renders eolmix command output.
//
// Output is either rich terminal output (lipgloss styles, pterm tables,
// glamour markdown) or plain text. FormatAuto picks terminal output only
// when the writer is a colour-capable TTY and NO_COLOR is unset.
package ui
