package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var ErrNoSealer = errors.New("browser needs a passphrase to open record values")

type TUI struct {
	vault  adapter.VaultClient
	sealer crypto.Sealer
	limit  int
	logger *logger.Logger
}

// New constructs the browser. limit is the number of records per page.
func New(vault adapter.VaultClient, sealer crypto.Sealer, limit int, logger *logger.Logger) *TUI {
	return &TUI{vault: vault, sealer: sealer, limit: limit, logger: logger}
}

// Browse runs the record browser on the alternate screen until the user
// quits.
func (t *TUI) Browse(ctx context.Context) error {
	if t.sealer == nil {
		return ErrNoSealer
	}

	model := newBrowserModel(ctx, t.vault, t.sealer, t.limit, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(browserModel); ok && result.lastErr != nil {
		t.logger.Debug().Err(result.lastErr).Msg("browser closed after an error")
	}
	return nil
}
