// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/tradeflow/tradetree"
)

// uiState is the screen currently shown
type uiState int

const (
	stateMenu uiState = iota
	stateDateInput
	stateValueInput
	stateResult
)

// menuAction identifies a menu entry
type menuAction int

const (
	actionInorder menuAction = iota
	actionSearch
	actionEdit
	actionDelete
	actionMax
	actionMin
	actionQuit
)

// menuItem represents an entry of the main menu
type menuItem struct {
	action menuAction
	title  string
	desc   string
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{actionInorder, "Inorder traversal", "every record in date order"},
		menuItem{actionSearch, "Search", "look up the record of a date"},
		menuItem{actionEdit, "Edit", "change the value of a record"},
		menuItem{actionDelete, "Delete", "remove the record of a date"},
		menuItem{actionMax, "Find the data with the MAX value", "records holding the largest value"},
		menuItem{actionMin, "Find the data with the MIN value", "records holding the smallest value"},
		menuItem{actionQuit, "Quit", "leave tradeflow"},
	}
}

// Model represents the Bubble Tea application state
type Model struct {
	state uiState
	ready bool

	menu       list.Model
	dateInput  textinput.Model
	valueInput textinput.Model
	result     viewport.Model

	// Data
	session *Session

	// State
	pending     menuAction // action waiting for input
	pendingDate string     // date chosen before the value prompt
	resultTitle string
	resultText  string // plain text copied by ctrl+y
	status      string
	statusErr   bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "62"}),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "39"}).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "46"}).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(session *Session) Model {
	menu := list.New(menuItems(), list.NewDefaultDelegate(), 0, 0)
	menu.SetShowTitle(false)
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	dateInput := textinput.New()
	dateInput.Placeholder = "dd/mm/yyyy"
	dateInput.CharLimit = 10
	dateInput.Width = 20

	valueInput := textinput.New()
	valueInput.Placeholder = "new value"
	valueInput.CharLimit = 20
	valueInput.Width = 24

	// Match the markdown style to the terminal background
	glamourStyle := "dark"
	if GetTerminalMode() == TerminalModeLight {
		glamourStyle = "light"
	}
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(72),
	)

	return Model{
		state:           stateMenu,
		menu:            menu,
		dateInput:       dateInput,
		valueInput:      valueInput,
		result:          viewport.New(0, 0),
		session:         session,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateDateInput:
			return m.updateDateInput(msg)
		case stateValueInput:
			return m.updateValueInput(msg)
		case stateResult:
			return m.updateResult(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateMenu handles key events on the main menu
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.runAction(item.action)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// runAction starts the menu action, prompting for a date when it needs one
func (m Model) runAction(action menuAction) (tea.Model, tea.Cmd) {
	m.status = ""
	switch action {
	case actionInorder:
		var b strings.Builder
		n := m.session.Dump(&b)
		if n == 0 {
			b.WriteString("No data found\n")
		}
		m.showResult(fmt.Sprintf(" 📋 Inorder traversal (%d records) ", n), b.String(), "")
	case actionMax:
		m.showRecords(" 🔺 MAX value ", m.session.Extremes(tradetree.Max))
	case actionMin:
		m.showRecords(" 🔻 MIN value ", m.session.Extremes(tradetree.Min))
	case actionSearch, actionEdit, actionDelete:
		m.pending = action
		m.state = stateDateInput
		m.dateInput.Reset()
		return m, m.dateInput.Focus()
	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

// updateDateInput handles key events while a date is typed
func (m Model) updateDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dateInput.Blur()
		m.state = stateMenu
		m.status = ""
		return m, nil
	case "enter":
		date := strings.TrimSpace(m.dateInput.Value())
		if _, err := tradetree.Decode(date); err != nil {
			m.setError(err)
			return m, nil
		}
		m.dateInput.Blur()
		return m.submitDate(date)
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m Model) submitDate(date string) (tea.Model, tea.Cmd) {
	switch m.pending {
	case actionSearch:
		detail, err := m.session.Detail(date)
		if err != nil {
			m.setError(err)
			m.state = stateMenu
			return m, nil
		}
		record, _, _ := m.session.Search(date)
		m.showResult(" 🔍 Search ", m.renderMarkdown(detail), record.String())

	case actionEdit:
		// like the menu this mirrors, check the date before asking for a value
		if _, found, _ := m.session.Search(date); !found {
			m.setError(&tradetree.NotFoundError{Date: date})
			m.state = stateMenu
			return m, nil
		}
		m.pendingDate = date
		m.state = stateValueInput
		m.valueInput.Reset()
		return m, m.valueInput.Focus()

	case actionDelete:
		record, found, err := m.session.Delete(date)
		if err == nil && !found {
			err = &tradetree.NotFoundError{Date: date}
		}
		if err != nil {
			m.setError(err)
			m.state = stateMenu
			return m, nil
		}
		m.showResult(" 🗑  Data deleted ", record.String()+"\n", record.String())
		m.setSuccess("Data deleted")
	}
	return m, nil
}

// updateValueInput handles key events while the new value is typed
func (m Model) updateValueInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.valueInput.Blur()
		m.state = stateMenu
		m.status = ""
		return m, nil
	case "enter":
		value, err := strconv.ParseUint(strings.TrimSpace(m.valueInput.Value()), 10, 64)
		if err != nil {
			m.status = "Invalid value entered."
			m.statusErr = true
			return m, nil
		}
		m.valueInput.Blur()
		record, err := m.session.Edit(m.pendingDate, value)
		if err != nil {
			m.setError(err)
			m.state = stateMenu
			return m, nil
		}
		m.showResult(" ✏️  Data updated ", record.String()+"\n", record.String())
		m.setSuccess("Data updated")
		return m, nil
	}

	var cmd tea.Cmd
	m.valueInput, cmd = m.valueInput.Update(msg)
	return m, cmd
}

// updateResult handles key events on the result screen
func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "backspace", "q":
		m.state = stateMenu
		return m, nil
	case "ctrl+y":
		text := m.resultText
		return m, func() tea.Msg {
			copyToClipboard(text)
			return nil
		}
	case "home":
		m.result.GotoTop()
		return m, nil
	case "end":
		m.result.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	return m, cmd
}

func (m *Model) showRecords(title string, records []tradetree.Record) {
	if len(records) == 0 {
		m.showResult(title, "No data found\n", "")
		return
	}
	var b strings.Builder
	for _, record := range records {
		b.WriteString(record.String())
		b.WriteByte('\n')
	}
	m.showResult(title, b.String(), b.String())
}

func (m *Model) showResult(title, content, plain string) {
	m.resultTitle = title
	if plain == "" {
		plain = content
	}
	m.resultText = plain
	m.result.SetContent(content)
	m.result.GotoTop()
	m.state = stateResult
}

func (m *Model) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content
	}
	if rendered, err := m.glamourRenderer.Render(content); err == nil {
		return rendered
	}
	return content
}

func (m *Model) setError(err error) {
	var decodeErr *tradetree.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		m.status = "Invalid date format"
	case errors.Is(err, tradetree.ErrNotFound):
		m.status = "Date not found"
	default:
		m.status = err.Error()
	}
	m.statusErr = true
}

func (m *Model) setSuccess(text string) {
	m.status = text
	m.statusErr = false
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	bodyWidth := m.width - 4
	bodyHeight := m.height - 8 // title, borders, status and help
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.menu.SetSize(bodyWidth, bodyHeight)
	m.result.Width = bodyWidth
	m.result.Height = bodyHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	var title, body string
	switch m.state {
	case stateMenu:
		title = fmt.Sprintf(" 📈 Tradeflow (%d records, height %d) ", m.session.Len(), m.session.Height())
		body = m.menu.View()
	case stateDateInput:
		title = " 📅 Enter date "
		body = m.styles.InputPrompt.Render("Date: ") + m.dateInput.View()
	case stateValueInput:
		title = fmt.Sprintf(" ✏️  New value for %s ", m.pendingDate)
		body = m.styles.InputPrompt.Render("Value: ") + m.valueInput.View()
	case stateResult:
		title = m.resultTitle
		body = m.result.View()
	}

	box := m.styles.Border.
		Width(m.width - 2).
		Height(m.height - 5).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			body,
		))

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.ErrorMessage.Render(" " + m.status)
		} else {
			status = m.styles.SuccessMessage.Render(" " + m.status)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		box,
		status,
		m.renderHelp(),
	)
}

// renderHelp renders the help footer for the current screen
func (m Model) renderHelp() string {
	var keys []string
	var descs []string

	switch m.state {
	case stateMenu:
		keys = append(keys, "enter", "↑/↓", "q")
		descs = append(descs, "select", "move", "quit")
	case stateDateInput, stateValueInput:
		keys = append(keys, "enter", "esc")
		descs = append(descs, "submit", "back to menu")
	case stateResult:
		keys = append(keys, "↑/↓", "ctrl+y", "esc")
		descs = append(descs, "scroll", "copy result", "back to menu")
	}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to copy to clipboard: %v\n", err)
		return err
	}
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session) error {
	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
