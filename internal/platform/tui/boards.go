package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mamoru/ten/internal/games/ten"
	"github.com/mamoru/ten/internal/storage"
)

// BoardsModel lets users pick or delete a saved board.
type BoardsModel struct {
	store     *storage.Store
	boards    []storage.SavedBoard
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *storage.SavedBoard
	status    string
	quitting  bool
	back      bool
}

// NewBoardsModel creates a saved boards model.
func NewBoardsModel(store *storage.Store, width, height int) BoardsModel {
	m := BoardsModel{
		store:     store,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	m.reload()
	return m
}

// reload refreshes the board list from storage.
func (m *BoardsModel) reload() {
	m.boards = nil
	if m.store == nil {
		return
	}

	boards, err := m.store.ListBoards()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.boards = boards
	m.cursor = min(m.cursor, max(len(m.boards)-1, 0))
}

// Init initializes the model.
func (m BoardsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BoardsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.boards)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.boards) > 0 {
			selected := m.boards[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case MenuActionDelete:
		if len(m.boards) > 0 && m.store != nil {
			name := m.boards[m.cursor].Name
			if _, err := m.store.DeleteBoard(name); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Deleted " + name
			}
			m.reload()
		}
	}

	return m, nil
}

// View renders the board list.
func (m BoardsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SAVED BOARDS", m.width))
	b.WriteString("\n\n")

	if len(m.boards) == 0 {
		b.WriteString(hintStyle.Render(centerText("No saved boards. Press Ctrl+S in a game to save one.", m.width)))
		b.WriteString("\n")
	}

	for i, sb := range m.boards {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-16s %dx%d  score %s  %s",
			cursor, sb.Name, sb.Size, sb.Size,
			ten.Display(sb.Score).StringFixed(1),
			sb.UpdatedAt.Format("Jan 02 15:04"))
		if i == m.cursor {
			line = statusStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(centerText("Enter: Play  |  X: Delete  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen board, or nil.
func (m BoardsModel) Selected() *storage.SavedBoard {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m BoardsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BoardsModel) WantsBack() bool {
	return m.back
}

// RunBoards runs the saved boards screen. It returns the chosen board, or
// nil with back reporting whether the user wants the menu again.
func RunBoards(store *storage.Store, width, height int) (selected *storage.SavedBoard, back bool, err error) {
	model := NewBoardsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(BoardsModel)
	if !ok {
		return nil, false, nil
	}

	return m.Selected(), m.WantsBack(), nil
}
