// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// BlockList displays catalog blocks in a navigable list.
type BlockList struct {
	blocks   []domain.Block
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewBlockList creates a new block list component.
func NewBlockList(s *styles.Styles) *BlockList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &BlockList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the block list.
func (l *BlockList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *BlockList) Update(msg tea.Msg) (*BlockList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "pgup":
			l.SetSelected(max(l.selected-l.visibleCount(), 0))
		case "pgdown":
			l.SetSelected(min(l.selected+l.visibleCount(), len(l.blocks)-1))
		}
	}
	return l, nil
}

// View renders the block list.
func (l *BlockList) View() string {
	if len(l.blocks) == 0 {
		return l.styles.Muted.Render("No blocks match")
	}

	visible := l.visibleCount()
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.blocks))

	lines := make([]string, 0, end-start+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Blocks (%d)", len(l.blocks))), "")
	for i := start; i < end; i++ {
		lines = append(lines, l.renderBlock(i, &l.blocks[i]))
	}
	return strings.Join(lines, "\n")
}

// visibleCount is how many two-line entries fit in the height.
func (l *BlockList) visibleCount() int {
	return max((l.height-2)/2, 1)
}

func (l *BlockList) renderBlock(index int, b *domain.Block) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	id := truncate(b.ID, max(l.width-12, 10))
	var title string
	if index == l.selected {
		title = l.styles.Selected.Render(fmt.Sprintf("%s%-*s", indicator, max(l.width-12, 10), id))
	} else {
		title = l.styles.Normal.Render(indicator + id)
	}

	summary := b.Name
	if b.Description != "" {
		summary += ": " + b.Description
	}
	detail := "    " + l.styles.Method(b.HTTPMethod) + " " +
		l.styles.Muted.Render(truncate(summary, max(l.width-14, 20)))

	return title + "\n" + detail
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// SetBlocks replaces the listed blocks and resets the selection.
func (l *BlockList) SetBlocks(blocks []domain.Block) {
	l.blocks = blocks
	l.selected = 0
}

// Blocks returns the listed blocks.
func (l *BlockList) Blocks() []domain.Block {
	return l.blocks
}

// Selected returns the index of the selected block.
func (l *BlockList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *BlockList) SetSelected(index int) {
	if index >= 0 && index < len(l.blocks) {
		l.selected = index
	}
}

// SelectedBlock returns the currently selected block, or nil if none.
func (l *BlockList) SelectedBlock() *domain.Block {
	if l.selected < 0 || l.selected >= len(l.blocks) {
		return nil
	}
	return &l.blocks[l.selected]
}

// MoveUp moves selection up.
func (l *BlockList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *BlockList) MoveDown() {
	if l.selected < len(l.blocks)-1 {
		l.selected++
	}
}

// SetSize sets the list dimensions.
func (l *BlockList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Len returns the number of listed blocks.
func (l *BlockList) Len() int {
	return len(l.blocks)
}
