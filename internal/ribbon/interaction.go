package ribbon

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/panicribbon/internal/health"
	"github.com/rileyhilliard/panicribbon/internal/logger"
)

// Controller is what the ribbon needs from the health engine.
type Controller interface {
	Registry() *health.Registry
	Store() *health.Store
	Refresh(index int)
	Restart(index int) (*health.RestartTask, error)
	Shutdown()
}

// Button identifies which pointer button was clicked.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Command is an entry of the per-segment command menu.
type Command int

const (
	CommandRefresh Command = iota
	CommandExit
)

// MenuCommands lists the menu entries in display order.
var MenuCommands = []Command{CommandRefresh, CommandExit}

// String returns the menu label.
func (c Command) String() string {
	switch c {
	case CommandRefresh:
		return "Refresh now"
	case CommandExit:
		return "Exit"
	default:
		return "unknown"
	}
}

// ClickOutcome reports what a click did.
type ClickOutcome int

const (
	ClickIgnored ClickOutcome = iota
	ClickRestarted
	ClickMenuOpened
)

// Tooltip describes the hover text for one segment.
type Tooltip struct {
	Index     int
	Name      string
	Latency   string
	CheckedAt time.Time
}

// Text returns the two-line tooltip body.
func (t Tooltip) Text() string {
	return fmt.Sprintf("%s\nLatency: %s", t.Name, t.Latency)
}

// Age describes when the shown status was recorded, relative to now.
func (t Tooltip) Age(now time.Time) string {
	if t.CheckedAt.IsZero() {
		return "not checked yet"
	}
	return "checked " + humanize.RelTime(t.CheckedAt, now, "ago", "from now")
}

// Handler maps pointer and menu intents onto engine actions.
// It is driven from a single goroutine (the UI loop) and is not safe for
// concurrent use.
type Handler struct {
	ctl  Controller
	log  logger.Logger
	geom Geometry

	tooltip    Tooltip
	hasTooltip bool

	menuIndex int
	menuOpen  bool
}

// NewHandler creates a handler with an empty geometry. Call Resize once the
// vertical extent is known.
func NewHandler(ctl Controller, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Noop()
	}
	return &Handler{
		ctl:  ctl,
		log:  log,
		geom: NewGeometry(0, ctl.Registry().Len()),
	}
}

// Resize recomputes the geometry for a new vertical extent.
func (h *Handler) Resize(extent int) {
	h.geom = NewGeometry(extent, h.ctl.Registry().Len())
}

// Geometry returns the current layout.
func (h *Handler) Geometry() Geometry {
	return h.geom
}

// Hover shows the tooltip for the segment under y, or clears it when y is
// outside every segment.
func (h *Handler) Hover(y int) (Tooltip, bool) {
	idx, ok := h.geom.IndexForCoordinate(y)
	if !ok {
		h.Leave()
		return Tooltip{}, false
	}
	return h.Focus(idx)
}

// Focus shows the tooltip for segment index.
func (h *Handler) Focus(index int) (Tooltip, bool) {
	spec, ok := h.ctl.Registry().At(index)
	if !ok {
		h.Leave()
		return Tooltip{}, false
	}
	st := h.ctl.Store().Read(index)
	h.tooltip = Tooltip{
		Index:     index,
		Name:      spec.Name,
		Latency:   st.LatencyText(),
		CheckedAt: st.CheckedAt,
	}
	h.hasTooltip = true
	return h.tooltip, true
}

// Leave clears any tooltip.
func (h *Handler) Leave() {
	h.tooltip = Tooltip{}
	h.hasTooltip = false
}

// Tooltip returns the tooltip currently shown.
func (h *Handler) Tooltip() (Tooltip, bool) {
	return h.tooltip, h.hasTooltip
}

// RefreshTooltip re-reads the store for the tooltip currently shown.
func (h *Handler) RefreshTooltip() {
	if h.hasTooltip {
		h.Focus(h.tooltip.Index)
	}
}

// Click handles a click at row y.
func (h *Handler) Click(button Button, y int) ClickOutcome {
	idx, ok := h.geom.IndexForCoordinate(y)
	if !ok {
		return ClickIgnored
	}
	return h.Activate(button, idx)
}

// Activate handles a click on segment index.
//
// A primary click on an unhealthy segment launches exactly one restart of
// that service; on a healthy segment it does nothing. A secondary click opens
// the command menu for that segment. Repeated clicks are not deduplicated.
func (h *Handler) Activate(button Button, index int) ClickOutcome {
	if index < 0 || index >= h.ctl.Registry().Len() {
		return ClickIgnored
	}

	switch button {
	case ButtonPrimary:
		if h.ctl.Store().Read(index).Healthy {
			return ClickIgnored
		}
		// Launch failures are logged by the restarter.
		if _, err := h.ctl.Restart(index); err != nil {
			h.log.Debug("restart not started: %v", err)
		}
		return ClickRestarted

	case ButtonSecondary:
		h.menuIndex = index
		h.menuOpen = true
		return ClickMenuOpened
	}
	return ClickIgnored
}

// Menu returns the segment whose command menu is open.
func (h *Handler) Menu() (int, bool) {
	return h.menuIndex, h.menuOpen
}

// CloseMenu dismisses the command menu without running anything.
func (h *Handler) CloseMenu() {
	h.menuOpen = false
}

// Invoke runs a menu command for segment index and closes the menu.
// It reports whether the program should exit.
func (h *Handler) Invoke(cmd Command, index int) bool {
	h.menuOpen = false

	switch cmd {
	case CommandRefresh:
		h.ctl.Refresh(index)
		return false

	case CommandExit:
		h.ctl.Shutdown()
		h.Leave()
		return true
	}
	return false
}
