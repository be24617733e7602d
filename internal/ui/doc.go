// Package ui provides the styled, non-interactive output used by the
// one-shot commands (check, restart, init).
//
// # Components
//
//	Spinner          - Animated status line for a blocking operation
//	RenderCheckTable - Result table for a round of health checks
//
// # Color Scheme
//
// Colors are ANSI codes so the output follows the terminal theme:
//
//	ColorSuccess (green) - Healthy services, finished operations
//	ColorError   (red)   - Unhealthy services, failures
//	ColorWarning (yellow)
//	ColorMuted   (gray)  - Latency, timing info
//
// # Spinner Usage
//
//	spinner := ui.NewSpinner("Restarting api", os.Stdout)
//	spinner.Start()
//	// ... wait ...
//	spinner.Success() // or spinner.Fail()
//
// When the writer is not a terminal the spinner prints only the final line.
package ui
