// Package logtail reads the tail of the gallery log file and parses its
// JSON lines for the in-app log overlay.
//
// # Reading Log Files
//
// Read uses a ring buffer to extract the last maxLines from a file in a
// single pass with O(maxLines) memory. Lines come back in file order. A
// missing file yields no lines and no error, since the log is only created
// once something has been written.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	entries := logtail.Parse(lines)
//
// # Parsing
//
// The TUI logs through zerolog's JSON writer. Parse pulls out the time,
// level and message fields (using zerolog's configured field names) and
// keeps the remaining keys as sorted Fields. Anything that is not a JSON
// object survives verbatim in Entry.Raw so a corrupted line still shows up.
//
// Colors are applied by the ui package from the active theme.
package logtail
