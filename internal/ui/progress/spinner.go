// Package progress provides progress indication for long-running git
// operations.
package progress

import (
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"
)

// opDone is sent when the wrapped operation completes.
type opDone struct {
	err error
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    chan opDone
	err     error
	quit    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForDone())
}

func (m spinnerModel) waitForDone() tea.Cmd {
	return func() tea.Msg {
		return <-m.done
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDone:
		m.err = msg.err
		m.quit = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	if m.quit {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// Run executes fn while showing an animated spinner with the given
// message. The spinner renders to stderr so stdout remains clean for
// piping. When stderr is not a terminal fn runs without any indicator.
func Run(message string, fn func() error) error {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return fn()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	done := make(chan opDone, 1)
	model := spinnerModel{
		spinner: sp,
		message: message,
		done:    done,
	}

	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))

	go func() {
		start := time.Now()
		err := fn()
		// Let the spinner render at least one frame so short
		// operations don't flash.
		if d := time.Since(start); d < 50*time.Millisecond {
			time.Sleep(50*time.Millisecond - d)
		}
		done <- opDone{err: err}
	}()

	finalModel, err := p.Run()
	if err != nil {
		// The TUI failed but the operation still ran to completion.
		res := <-done
		return res.err
	}

	return finalModel.(spinnerModel).err
}
