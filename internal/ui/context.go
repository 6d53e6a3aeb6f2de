package ui

import (
	"sync"

	"github.com/zhubert/emailwriter/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// Stacked is true on narrow terminals: compose above reply, both full width
	Stacked       bool
	ComposeWidth  int
	ComposeHeight int
	ReplyWidth    int
	ReplyHeight   int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.Stacked = width < StackBelowWidth
	if v.Stacked {
		v.ComposeWidth = width
		v.ReplyWidth = width
		v.ComposeHeight = v.ContentHeight / 2
		v.ReplyHeight = v.ContentHeight - v.ComposeHeight
	} else {
		v.ComposeWidth = width / ComposeWidthRatio
		v.ReplyWidth = width - v.ComposeWidth
		v.ComposeHeight = v.ContentHeight
		v.ReplyHeight = v.ContentHeight
	}

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"stacked", v.Stacked,
		"composeWidth", v.ComposeWidth,
		"replyWidth", v.ReplyWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders and padding
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize-InputPaddingWidth, 1)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 1)
}

// EditorHeight returns the textarea height for a panel of the given height
// with extra lines of chrome beyond the title and status lines.
func (v *ViewContext) EditorHeight(panelHeight, extra int) int {
	return max(v.InnerHeight(panelHeight)-PanelChromeHeight-extra, MinEditorHeight)
}
