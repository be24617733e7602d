// Package ribbon draws the health ribbon: a narrow column pinned to the
// right edge of the terminal, split into one colored segment per service.
//
// The package is split into a few layers:
//
//   - Geometry maps a vertical coordinate to a service index.
//   - Render turns a status snapshot into draw operations. It is pure.
//   - Handler turns pointer and keyboard intents into restarts, refreshes,
//     tooltips and the command menu. It knows nothing about Bubble Tea.
//   - Model is the Bubble Tea program that owns the screen. Health checks
//     never touch it directly; they signal through an invalidation channel
//     and the model re-reads the store on its own goroutine.
//
// Usage:
//
//	engine := health.NewEngine(registry, health.Options{...})
//	engine.Start()
//	model := ribbon.NewModel(engine, ribbon.Options{Width: 2, Logger: log})
//	p := tea.NewProgram(model, ribbon.ProgramOptions()...)
//	_, err := p.Run()
package ribbon
