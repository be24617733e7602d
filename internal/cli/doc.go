// Package cli implements the panicribbon command-line interface.
//
// # Command Structure
//
//	panicribbon [watch]        - Show the health ribbon (default)
//	panicribbon watch --headless - Check and log without a display
//	panicribbon check          - Probe every service once and print a table
//	panicribbon init           - Create services.json
//	panicribbon config         - Print the resolved configuration
//	panicribbon restart <name> - Run one service's restart command
//	panicribbon version
//
// # Startup
//
// Every long-running command follows the same order:
//
//  1. Parse the global flags (--config, --log-file, --interval, --timeout)
//  2. Open the log file, mirrored to stdout unless the ribbon owns the screen
//  3. Load services.json, creating it when missing
//  4. Build the health engine and start the scheduler
//
// Configuration problems never stop startup; they are logged and the
// placeholder service is monitored instead.
package cli
