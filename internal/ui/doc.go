// Package ui renders the interactive prompts of the configurator with Bubble
// Tea.
//
// Two prompt models exist:
//   - ListModel is the selectable list widget. The cursor starts on the first
//     option, Up/k and Down/j wrap around, Home/End jump to the ends and Enter
//     confirms. Typing letters jumps the cursor to the best matching label
//     without filtering the list.
//   - MessageModel is the message box. It closes on any key.
//
// Both are plain tea.Models and are exercised directly through Harness in
// tests.
//
// Run owns the terminal for the whole session. It starts one program around
// a host model and runs the session function on its own goroutine. Each
// Prompter call sends a request message to the program and blocks until the
// host answers it, so there is exactly one renderer and one prompt on screen
// at a time. When the session returns, panics or the operator presses
// Ctrl+C the program exits and the terminal is restored before Run returns.
package ui
