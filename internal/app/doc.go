// Package app provides the orchestration layer for the gallery application.
//
// # Overview
//
// This package wires together configuration, logging, the REST client, the
// photo screens and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load configuration from ~/.config/gallery/config.toml
//  2. Apply command-line overrides (base URL, timeout)
//  3. Open the JSON log file; the TUI owns the terminal
//  4. Build rest.Client, photos.Service, the ui.Router and the list screen
//  5. Start the auto-refresher when auto_refresh is non-zero
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Run and flag overrides
//   - poller.go: background auto-refresh with exponential backoff
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read gallery config
//	       ├─────> logging.NewFile()    JSON log file
//	       ├─────> rest.NewClient()     HTTP client
//	       ├─────> photos.NewService()  Photo endpoints
//	       ├─────> screens.NewList()    Root screen
//	       ├─────> StartRefresher()     Optional background refresh
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Auto Refresh
//
// With auto_refresh set, the list screen is refreshed on that cadence.
// While the list stays Failed the wait doubles per consecutive failure, up
// to five minutes, and drops back to the configured interval after the next
// success. Refreshes go through the list controller, so the UI sees them
// exactly as it sees a manual refresh.
//
// # Error Handling
//
// Run returns configuration errors, invalid flag values and log file
// failures. Fetch failures never reach Run; they become view states.
package app
