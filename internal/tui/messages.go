package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/report"
)

type navigateMsg struct{ tab int }

type statusMsg struct {
	text string
	err  bool
}

type exportedMsg struct {
	what string // "convidados" | "profissionais"
	path string
	err  error
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func alert(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, err: true} }
}

// result turns a controller error into a status line update.
func result(err error, okText string) tea.Cmd {
	switch {
	case err == nil:
		if okText == "" {
			return nil
		}
		return status(okText)
	case errors.Is(err, planner.ErrNotPersisted):
		return alert("Alteração não salva: " + err.Error())
	case errors.Is(err, planner.ErrBlank):
		return alert("Preencha todos os campos.")
	case errors.Is(err, planner.ErrDate):
		return alert("Selecione uma data no calendário.")
	case errors.Is(err, planner.ErrIndex):
		return nil
	default:
		return alert(err.Error())
	}
}

func exportStatus(msg exportedMsg) statusMsg {
	switch {
	case msg.err == nil:
		return statusMsg{text: "Arquivo exportado: " + msg.path}
	case errors.Is(msg.err, report.ErrNothingToExport):
		return statusMsg{text: fmt.Sprintf("Não há %s para exportar!", msg.what), err: true}
	case errors.Is(msg.err, report.ErrShareUnavailable):
		return statusMsg{text: "O compartilhamento não está disponível neste dispositivo. Arquivo salvo em " + msg.path, err: true}
	default:
		return statusMsg{text: "Falha ao gerar o arquivo TXT.", err: true}
	}
}

// exportCmd runs the export off the update loop. content is built by the
// caller from a snapshot, so the command touches no screen state.
func exportCmd(d *Deps, what, file string, count int, content string) tea.Cmd {
	return func() tea.Msg {
		p, err := d.Exporter.Export(d.Ctx, file, count, content)
		return exportedMsg{what: what, path: p, err: err}
	}
}
