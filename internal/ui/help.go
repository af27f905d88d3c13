package ui

import (
	"errors"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rackbrowser/internal/ui/views"
)

// restoreDelay lets ov finish with the terminal before bubbletea takes it back
const restoreDelay = 100 * time.Millisecond

var errNoProgram = errors.New("pager needs a running program")

// helpPagerMsg reports how the help pager ended
type helpPagerMsg struct {
	err error
}

// PagerOps hands the terminal to ov and back
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates pager operations bound to a running program
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program}
}

// Page suspends the TUI and shows r in the pager until it is closed
func (p *PagerOps) Page(r io.Reader) error {
	if p.program == nil {
		return errNoProgram
	}
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		time.Sleep(restoreDelay)
		_ = p.program.RestoreTerminal()
	}()

	return RunPager(r)
}

// helpPagerCmd pages the key reference off the update loop
func (p *PagerOps) helpPagerCmd() tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: p.Page(strings.NewReader(views.HelpContent()))}
	}
}
