package tui

import "github.com/charmbracelet/bubbles/key"

var keys = struct {
	add, del, toggle, edit      key.Binding
	inc, dec, paid, export      key.Binding
	open, enter, back           key.Binding
	selectDay, focusSwitch      key.Binding
	prevMonth, nextMonth        key.Binding
	nextTab, prevTab, quit      key.Binding
}{
	add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar")),
	del:         key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "excluir")),
	toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("espaço", "concluir")),
	edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
	inc:         key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "mais um")),
	dec:         key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "menos um")),
	paid:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "editar pago")),
	export:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exportar")),
	open:        key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "abrir")),
	selectDay:   key.NewBinding(key.WithKeys(" "), key.WithHelp("espaço", "escolher dia")),
	prevMonth:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "mês anterior")),
	nextMonth:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "próximo mês")),
	nextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próxima aba")),
	prevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "aba anterior")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
	focusSwitch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "nome/calendário")),
	enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
	back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
}
