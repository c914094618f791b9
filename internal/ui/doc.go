// Package ui provides the Bubble Tea terminal interface for the gallery.
//
// # Architecture Overview
//
// The UI renders two kinds of screens from package screens: the photo list
// (always the root) and photo detail screens pushed on top of it. Router
// owns the stack and implements screens.Navigator, so List.Select pushes a
// detail screen without the list knowing about Bubble Tea.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and Run
//   - navigation.go: Router, the navigation stack
//   - views.go: header, footer, list, detail, loading and error rendering
//   - logs.go: the log overlay over the TUI's own JSON log file
//   - help.go, keys.go: key bindings and the help modal
//   - theme.go, style_helpers.go: lipgloss themes (Dracula, Slate)
//
// # Event Flow
//
//  1. Init starts the list screen's Load in a command goroutine
//  2. Each controller transition calls its subscriber, which sends
//     stateChangedMsg to the program
//  3. Update reacts (selection clamp, spinner restart) and View reads the
//     current state straight from the screen
//  4. enter on a list row calls List.Select; the router pushes a detail
//     screen and queues its Load, which the model returns as a command
//
// Fetches never run inside Update. Load, Refresh and Retry are always
// returned as tea.Cmd so the event loop keeps rendering the spinner.
//
// # Key Bindings
//
//   - j/k, up/down, g/G, ctrl+d/ctrl+u: Move through the list
//   - enter: Open the selected photo, or Retry on an error screen
//   - r: Refresh the visible screen (shows the loading state first)
//   - esc/backspace: Back; H: back to the gallery root
//   - u: Toggle the URL column (persisted)
//   - L: Toggle the log overlay
//   - T: Cycle theme (persisted)
//   - h/?: Help
//   - q or Ctrl+C: Exit
package ui
