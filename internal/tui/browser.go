// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const defaultPageLimit = 10

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type pageLoadedMsg struct {
	page    uint64
	records []models.StoredRecord
	err     error
}

type removeDoneMsg struct {
	id  models.RecordID
	err error
}

type copyDoneMsg struct {
	err error
}

type browserModel struct {
	ctx    context.Context
	vault  adapter.VaultClient
	sealer crypto.Sealer
	logger *logger.Logger

	page    uint64
	limit   int
	records []models.StoredRecord
	idx     int

	loading    bool
	spinner    spinner.Model
	revealed   bool
	confirming bool

	status  string
	lastErr error
}

func newBrowserModel(ctx context.Context, vault adapter.VaultClient, sealer crypto.Sealer, limit int, log *logger.Logger) browserModel {
	if limit <= 0 {
		limit = defaultPageLimit
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:     ctx,
		vault:   vault,
		sealer:  sealer,
		logger:  log,
		limit:   limit,
		loading: true,
		spinner: s,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadPage(m.page))
}

func (m browserModel) cmdLoadPage(page uint64) tea.Cmd {
	return func() tea.Msg {
		records, err := m.vault.GetStoredPasswords(m.ctx, page, m.limit)
		return pageLoadedMsg{page: page, records: records, err: err}
	}
}

func (m browserModel) cmdRemove(id models.RecordID) tea.Cmd {
	return func() tea.Msg {
		return removeDoneMsg{id: id, err: m.vault.RemoveData(m.ctx, id)}
	}
}

func (m browserModel) cmdCopy(secret string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(secret); err != nil {
			return copyDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copyDoneMsg{}
	}
}

func (m browserModel) current() (models.StoredRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.StoredRecord{}, false
	}
	return m.records[m.idx], true
}

func (m browserModel) open(r models.StoredRecord) (string, error) {
	plain, err := m.sealer.Open(r.Value)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		// an empty page past the end keeps the current one
		if len(msg.records) == 0 && msg.page > m.page {
			m.status = "no more records"
			return m, nil
		}
		m.page = msg.page
		m.records = msg.records
		m.revealed = false
		if m.idx >= len(m.records) {
			m.idx = len(m.records) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case removeDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "removed " + models.FormatRecordID(msg.id)
		m.loading = true
		return m, m.cmdLoadPage(m.page)

	case copyDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "secret copied to clipboard"
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m browserModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.lastErr != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.lastErr = nil
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			if r, ok := m.current(); ok {
				return m, m.cmdRemove(r.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.revealed = false
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
			m.revealed = false
		}
	case key.Matches(msg, keys.left):
		if m.page > 0 && !m.loading {
			m.loading = true
			m.idx = 0
			return m, m.cmdLoadPage(m.page - 1)
		}
	case key.Matches(msg, keys.right):
		if len(m.records) == m.limit && !m.loading {
			m.loading = true
			return m, m.cmdLoadPage(m.page + 1)
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadPage(m.page)
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.revealed = !m.revealed
		}
	case key.Matches(msg, keys.copy):
		r, ok := m.current()
		if !ok {
			return m, nil
		}
		secret, err := m.open(r)
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		return m, m.cmdCopy(secret)
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirming = true
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Vault records, page %d", m.page+1)
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	if len(m.records) == 0 && !m.loading {
		b.WriteString("no records\n")
	}
	for i, r := range m.records {
		line := fmt.Sprintf("%s  %s", r.Name, helpStyle.Render(string(r.Description)))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
			if m.revealed {
				secret, err := m.open(r)
				if err != nil {
					secret = "<cannot open: " + err.Error() + ">"
				}
				b.WriteString("    id:     " + models.FormatRecordID(r.ID) + "\n")
				b.WriteString("    secret: " + secret + "\n")
			}
			continue
		}
		b.WriteString("  " + line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	switch {
	case m.lastErr != nil:
		b.WriteString("\n" + errorOverlayModel{message: m.lastErr.Error()}.View() + "\n")
	case m.confirming:
		if r, ok := m.current(); ok {
			b.WriteString("\n" + confirmModel{message: string(r.Name)}.View() + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move  ←/→ page  enter reveal  c copy  d remove  r refresh  q quit"))
	return appStyle.Render(b.String())
}
