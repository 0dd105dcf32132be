// Package tui is the interactive blog browser of the command-line client.
package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/bloglist/internal/adapter"
	"github.com/MKhiriev/bloglist/internal/logger"
)

var errUnexpectedModel = errors.New("browser finished with an unexpected model")

// TUI runs full-screen views over a [adapter.ServerAdapter].
type TUI struct {
	api    adapter.ServerAdapter
	logger *logger.Logger
}

func New(api adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{api: api, logger: logger}
}

// Browse shows the blog list until the user quits. It returns the last
// error reported by the server, if the user quit while it was displayed.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowserModel(ctx, t.api, clipboard.WriteAll)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Browse").Msg("browser stopped")
		return err
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return errUnexpectedModel
	}

	return result.lastErr
}
