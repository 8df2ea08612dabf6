package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type Buffer struct {
	editor   *Editor
	filename string
}

type model struct {
	width              int
	height             int
	cursorX            int
	cursorY            int
	zPanMode           bool
	buffers            []Buffer
	currentBufferIndex int
	mode               Mode
	help               bool
	helpScroll         int
	taskInput          string
	filename           string
	fileList           []string
	selectedFileIndex  int
	fileOp             FileOperation
	openInNewBuffer    bool
	confirmAction      ConfirmAction
	errorMessage       string
	successMessage     string
	config             *Config
	logger             *slog.Logger
}

var (
	bufferBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("234"))
	activeBufferStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("234"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
)

func initialModel() model {
	config := loadConfig()
	logger := newLogger()

	editor := NewEditor(logger)
	editor.SetLinkMode(config.LinkMode)

	mode := ModeStartup
	if !config.StartMenu {
		mode = ModeNormal
	}

	return model{
		buffers:            []Buffer{{editor: editor}},
		currentBufferIndex: 0,
		mode:               mode,
		selectedFileIndex:  -1,
		config:             config,
		logger:             logger,
	}
}

func (m *model) currentBuffer() *Buffer {
	if len(m.buffers) == 0 {
		return nil
	}
	return &m.buffers[m.currentBufferIndex]
}

func (m *model) currentEditor() *Editor {
	if buf := m.currentBuffer(); buf != nil {
		return buf.editor
	}
	return nil
}

func (m *model) addNewBuffer(editor *Editor, filename string) {
	editor.SetLinkMode(m.config.LinkMode)
	m.buffers = append(m.buffers, Buffer{editor: editor, filename: filename})
	m.currentBufferIndex = len(m.buffers) - 1
	m.syncViewports()
}

// showBufferBar reports whether the buffer bar row is visible, which shifts
// the canvas down one row.
func (m *model) showBufferBar() bool {
	return m.mode != ModeStartup && len(m.buffers) > 1
}

func (m *model) canvasTop() int {
	if m.showBufferBar() {
		return 1
	}
	return 0
}

func (m *model) renderHeight() int {
	h := m.height - 1 - m.canvasTop()
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) syncViewports() {
	for i := range m.buffers {
		m.buffers[i].editor.Viewport().SetSize(m.width, m.renderHeight())
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if maxY := m.renderHeight() - 1; m.cursorY > maxY {
		m.cursorY = maxY
	}
}

// cursorWorld is the cursor's position in the current buffer's world frame.
func (m *model) cursorWorld() Point {
	return m.currentEditor().Viewport().ScreenToWorld(Point{float64(m.cursorX), float64(m.cursorY)})
}

func (m *model) scanSavedFiles() {
	m.fileList = []string{}

	dir, err := os.Getwd()
	if err != nil {
		m.selectedFileIndex = -1
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.selectedFileIndex = -1
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		m.filename = strings.TrimSuffix(m.fileList[0], ".json")
	} else {
		m.selectedFileIndex = -1
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		m.syncViewports()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.help {
		return m, nil
	}
	editor := m.currentEditor()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		editor.Viewport().ApplyZoomFactor(wheelZoomIn)
		return m, nil
	case tea.MouseButtonWheelDown:
		editor.Viewport().ApplyZoomFactor(wheelZoomOut)
		return m, nil
	}

	ev := PointerEvent{
		Pos:   Point{float64(msg.X), float64(msg.Y - m.canvasTop())},
		Shift: msg.Shift,
		Link:  msg.Alt,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			editor.PointerDown(ev)
		}
	case tea.MouseActionMotion:
		editor.PointerMove(ev)
	case tea.MouseActionRelease:
		editor.PointerUp(ev)
	}

	// Keep the keyboard cursor near the mouse.
	m.cursorX = msg.X
	m.cursorY = msg.Y - m.canvasTop()
	m.ensureCursorInBounds()
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help && m.mode != ModeStartup {
		switch msg.String() {
		case "esc", "escape", "q", "?":
			m.help = false
			m.helpScroll = 0
		case "j", "down":
			m.helpScroll++
		case "k", "up":
			if m.helpScroll > 0 {
				m.helpScroll--
			}
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.mode {
	case ModeStartup:
		return m.updateStartupKey(msg)
	case ModeNormal:
		return m.updateNormalKey(msg)
	case ModeTaskInput:
		return m.updateTaskInputKey(msg)
	case ModeFileInput:
		return m.updateFileInputKey(msg)
	case ModeConfirm:
		return m.updateConfirmKey(msg)
	}
	return m, nil
}

func (m model) updateStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.mode = ModeNormal
		m.syncViewports()
	case "o":
		m.mode = ModeFileInput
		m.fileOp = FileOpOpen
		m.openInNewBuffer = false
		m.filename = ""
		m.scanSavedFiles()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""
	editor := m.currentEditor()

	if msg.Type == tea.KeyEscape {
		m.zPanMode = false
		editor.clearSelection()
		return m, nil
	}

	moveCursor := func(dx, dy int) {
		if m.zPanMode {
			editor.Viewport().ApplyPanDelta(float64(-dx), float64(-dy))
		} else {
			m.cursorX += dx
			m.cursorY += dy
			m.ensureCursorInBounds()
		}
	}

	switch msg.String() {
	case "h", "left":
		moveCursor(-1, 0)
	case "j", "down":
		moveCursor(0, 1)
	case "k", "up":
		moveCursor(0, -1)
	case "l", "right":
		moveCursor(1, 0)
	case "H", "shift+left":
		moveCursor(-5, 0)
	case "J", "shift+down":
		moveCursor(0, 5)
	case "K", "shift+up":
		moveCursor(0, -5)
	case "L", "shift+right":
		moveCursor(5, 0)

	case "z":
		m.zPanMode = !m.zPanMode
	case "+", "=":
		editor.Viewport().ApplyZoomFactor(wheelZoomIn)
	case "-":
		editor.Viewport().ApplyZoomFactor(wheelZoomOut)
	case "0":
		editor.Viewport().Reset()

	case "a":
		m.mode = ModeTaskInput
		m.taskInput = ""
	case "v":
		editor.SetLinkMode(!editor.LinkMode())
		if editor.LinkMode() {
			m.successMessage = "Link mode on"
		} else {
			m.successMessage = "Link mode off"
		}

	case "enter", " ", "space":
		// Keyboard click at the cursor.
		ev := PointerEvent{Pos: Point{float64(m.cursorX), float64(m.cursorY)}}
		editor.PointerDown(ev)
		editor.PointerUp(ev)
	case "V":
		// Keyboard link: first press marks the source, second press over
		// another task commits the dependency.
		editor.LinkClick(Point{float64(m.cursorX), float64(m.cursorY)})

	case "d":
		if len(editor.SelectedTasks()) == 0 {
			break
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteSelection
		} else {
			editor.DeleteSelected()
		}
	case "c":
		editor.CompleteSelected()
	case "ctrl+a":
		editor.SelectAll()

	case "n":
		if m.config.Confirmations && editor.Graph().Len() > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClearGraph
		} else {
			editor.ClearGraph()
			m.currentBuffer().filename = ""
		}
	case "N":
		m.addNewBuffer(NewEditor(m.logger), "")
	case "{":
		if len(m.buffers) > 1 {
			m.currentBufferIndex = (m.currentBufferIndex - 1 + len(m.buffers)) % len(m.buffers)
		}
	case "}":
		if len(m.buffers) > 1 {
			m.currentBufferIndex = (m.currentBufferIndex + 1) % len(m.buffers)
		}
	case "x":
		if len(m.buffers) <= 1 {
			break
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmCloseBuffer
		} else {
			m.closeCurrentBuffer()
		}

	case "s":
		m.mode = ModeFileInput
		m.fileOp = FileOpSave
		m.filename = strings.TrimSuffix(m.currentBuffer().filename, ".json")
	case "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.filename = strings.TrimSuffix(m.currentBuffer().filename, ".json")
	case "o":
		m.mode = ModeFileInput
		m.fileOp = FileOpOpen
		m.openInNewBuffer = false
		m.scanSavedFiles()
	case "O":
		m.mode = ModeFileInput
		m.fileOp = FileOpOpen
		m.openInNewBuffer = true
		m.scanSavedFiles()

	case "y":
		if err := yankDocument(editor); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Graph copied to clipboard"
		}
	case "p":
		name, err := pasteTaskName()
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		if name == "" {
			m.errorMessage = "Clipboard is empty"
			break
		}
		pos := m.cursorWorld()
		editor.AddTask(TaskSpec{Name: name, Pos: &pos})

	case "?":
		m.help = true
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
		} else {
			return m, tea.Quit
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateTaskInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.taskInput = ""
	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.taskInput)
		if name != "" {
			pos := m.cursorWorld()
			m.currentEditor().AddTask(TaskSpec{Name: name, Pos: &pos})
		}
		m.mode = ModeNormal
		m.taskInput = ""
	case msg.Type == tea.KeyBackspace:
		if len(m.taskInput) > 0 {
			runes := []rune(m.taskInput)
			m.taskInput = string(runes[:len(runes)-1])
		}
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	default:
		keyStr := msg.String()
		if len([]rune(keyStr)) == 1 {
			m.taskInput += keyStr
		}
	}
	return m, nil
}

func (m model) updateFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.errorMessage = ""
	case msg.String() == "up":
		if m.fileOp == FileOpOpen && m.selectedFileIndex > 0 {
			m.selectedFileIndex--
			m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], ".json")
		}
	case msg.String() == "down":
		if m.fileOp == FileOpOpen && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
			m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], ".json")
		}
	case msg.Type == tea.KeyEnter:
		return m.performFileOp()
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			runes := []rune(m.filename)
			m.filename = string(runes[:len(runes)-1])
		}
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	default:
		keyStr := msg.String()
		if len([]rune(keyStr)) == 1 {
			m.filename += keyStr
		}
	}
	return m, nil
}

func (m model) performFileOp() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.filename) == "" {
		m.errorMessage = "Filename cannot be empty"
		return m, nil
	}

	switch m.fileOp {
	case FileOpSave:
		path := m.config.GetSavePath(m.filename + ".json")
		if _, err := os.Stat(path); err == nil && m.config.Confirmations && m.currentBuffer().filename != m.filename+".json" {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		return m.saveCurrentBuffer()
	case FileOpSavePNG:
		path := m.config.GetSavePath(m.filename + ".png")
		if err := exportPNG(m.currentEditor(), path); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.mode = ModeNormal
		m.successMessage = fmt.Sprintf("Exported %s.png", m.filename)
	case FileOpOpen:
		path := m.config.GetSavePath(m.filename + ".json")
		doc, err := openDocument(path)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		if m.openInNewBuffer {
			m.addNewBuffer(NewEditor(m.logger), m.filename+".json")
		} else {
			m.currentBuffer().filename = m.filename + ".json"
		}
		m.currentEditor().LoadGraph(doc)
		m.mode = ModeNormal
		m.successMessage = fmt.Sprintf("Opened %s.json", m.filename)
	}
	return m, nil
}

func (m model) saveCurrentBuffer() (tea.Model, tea.Cmd) {
	path := m.config.GetSavePath(m.filename + ".json")
	if err := saveDocument(m.currentEditor().GetGraph(), path); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.currentBuffer().filename = m.filename + ".json"
	m.mode = ModeNormal
	m.successMessage = fmt.Sprintf("Saved %s.json", m.filename)
	return m, nil
}

func (m model) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmDeleteSelection:
			m.currentEditor().DeleteSelected()
			m.mode = ModeNormal
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClearGraph:
			m.currentEditor().ClearGraph()
			m.currentBuffer().filename = ""
			m.mode = ModeNormal
		case ConfirmCloseBuffer:
			m.closeCurrentBuffer()
			m.mode = ModeNormal
		case ConfirmOverwriteFile:
			return m.saveCurrentBuffer()
		}
	case "n", "N", "esc", "escape":
		m.mode = ModeNormal
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) closeCurrentBuffer() {
	if len(m.buffers) <= 1 {
		return
	}
	m.buffers = append(m.buffers[:m.currentBufferIndex], m.buffers[m.currentBufferIndex+1:]...)
	if m.currentBufferIndex >= len(m.buffers) {
		m.currentBufferIndex = len(m.buffers) - 1
	}
	m.syncViewports()
}

func (m model) View() string {
	if m.help && m.mode != ModeStartup {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}

	renderWidth := m.width
	if renderWidth < 1 {
		renderWidth = 1
	}
	renderHeight := m.renderHeight()

	var result strings.Builder

	if m.showBufferBar() {
		result.WriteString(m.renderBufferBar(renderWidth))
		result.WriteString("\n")
	}

	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		m.writeFileList(&result, renderWidth, renderHeight)
	} else {
		canvas := renderCanvas(m.currentEditor(), renderWidth, renderHeight)

		cursorX, cursorY := m.cursorX, m.cursorY
		if m.mode == ModeNormal && cursorY >= 0 && cursorY < len(canvas) {
			line := []rune(canvas[cursorY])
			if cursorX >= 0 && cursorX < len(line) {
				line[cursorX] = '█'
				canvas[cursorY] = string(line)
			}
		}

		for i, line := range canvas {
			result.WriteString(line)
			if i < len(canvas)-1 {
				result.WriteString("\n")
			}
		}
	}

	result.WriteString("\n")
	result.WriteString(m.renderStatusLine(renderWidth))

	return result.String()
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  Taskmap",
		"",
		"  'n' New task graph",
		"  'o' Open existing graph",
		"  'q' Quit",
		"",
		"  Press 'n' for a new graph, 'o' to open, or 'q' to quit",
	}
	return strings.Join(lines, "\n")
}

func (m model) writeFileList(result *strings.Builder, renderWidth, renderHeight int) {
	result.WriteString("Select a saved graph:\n")
	result.WriteString(strings.Repeat("─", renderWidth))
	result.WriteString("\n")

	if len(m.fileList) == 0 {
		result.WriteString("(No .json files found in current directory)\n")
	} else {
		maxFiles := renderHeight - 4
		if maxFiles < 1 {
			maxFiles = 1
		}
		startIdx := 0
		if m.selectedFileIndex >= maxFiles {
			startIdx = m.selectedFileIndex - maxFiles + 1
		}
		endIdx := startIdx + maxFiles
		if endIdx > len(m.fileList) {
			endIdx = len(m.fileList)
		}
		for i := startIdx; i < endIdx; i++ {
			displayName := strings.TrimSuffix(m.fileList[i], ".json")
			if i == m.selectedFileIndex {
				result.WriteString("> " + displayName + " <")
			} else {
				result.WriteString("  " + displayName)
			}
			result.WriteString("\n")
		}
	}

	result.WriteString(strings.Repeat("─", renderWidth))
	result.WriteString("\n")
	result.WriteString("Filename: ")
	result.WriteString(m.filename)
	result.WriteString("█")
}

func (m model) renderBufferBar(width int) string {
	var parts []string
	for i, buf := range m.buffers {
		name := strings.TrimSuffix(buf.filename, ".json")
		if name == "" {
			name = fmt.Sprintf("Buffer %d", i+1)
		}
		if i == m.currentBufferIndex {
			parts = append(parts, activeBufferStyle.Render("["+name+"]"))
		} else {
			parts = append(parts, bufferBarStyle.Render(name))
		}
	}
	bar := "Open graphs: " + strings.Join(parts, " | ")
	return bufferBarStyle.Width(width).Render(bar)
}

func (m model) renderStatusLine(width int) string {
	editor := m.currentEditor()
	var statusLine string

	switch m.mode {
	case ModeTaskInput:
		statusLine = fmt.Sprintf("Mode: TASK | Name: %s█ | Enter=create, Esc=cancel", m.taskInput)
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSave:
			opStr = "Save"
		case FileOpSavePNG:
			opStr = "Export PNG"
		case FileOpOpen:
			opStr = "Open"
		}
		if m.errorMessage != "" {
			statusLine = fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s | Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
			return errorStyle.Width(width).Render(statusLine)
		}
		statusLine = fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteSelection:
			n := len(editor.SelectedTasks())
			if n == 1 {
				message = "Delete selected task? (y/n)"
			} else {
				message = fmt.Sprintf("Delete %d selected tasks? (y/n)", n)
			}
		case ConfirmQuit:
			message = "Quit Taskmap? (y/n)"
		case ConfirmClearGraph:
			message = "Clear this graph? Unsaved changes will be lost. (y/n)"
		case ConfirmCloseBuffer:
			message = "Close current buffer? Unsaved changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s.json already exists. Overwrite? (y/n)", m.filename)
		}
		statusLine = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		modeStr := "NORMAL"
		if m.zPanMode {
			modeStr = "PAN"
		}
		status := fmt.Sprintf("Mode: %s | Cursor: (%d,%d) | Zoom: %.1fx", modeStr, m.cursorX, m.cursorY, editor.Viewport().Zoom)
		if editor.LinkMode() {
			status += " | LINK"
		}
		if src := editor.PendingLinkSource(); src != nil {
			status += fmt.Sprintf(" | Linking from %s (V on target)", src.Name)
		}
		if n := len(editor.SelectedTasks()); n > 0 {
			status += fmt.Sprintf(" | Selected: %d", n)
		}
		if m.successMessage != "" {
			status += " | " + m.successMessage
		}
		if m.errorMessage != "" {
			status += " | ERROR: " + m.errorMessage
			return errorStyle.Width(width).Render(status)
		} else if m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
		statusLine = status
	}

	return statusStyle.Width(width).Render(statusLine)
}

func (m model) helpView() string {
	helpLines := []string{
		"Taskmap Help",
		"============",
		"",
		"Navigation:",
		"-----------",
		"  h/←/j/↓/k/↑/l/→  Move cursor around the screen",
		"  Shift+h/j/k/l    Move cursor 5x faster",
		"  z                Toggle pan mode (direction keys pan the canvas)",
		"  +/-              Zoom in/out",
		"  0                Reset pan and zoom",
		"  Mouse wheel      Zoom in/out",
		"  Drag empty space Pan the canvas",
		"",
		"Task Operations:",
		"----------------",
		"  a                Add a task at the cursor position",
		"  Enter/Space      Select the task under the cursor",
		"  Shift+Click      Toggle a task in the selection",
		"  Drag a task      Move it",
		"  d                Delete selected tasks",
		"  c                Mark selected tasks completed",
		"  Ctrl+A           Select all tasks",
		"  Esc              Clear the selection",
		"",
		"Dependencies:",
		"-------------",
		"  Alt+Drag         Link one task to another",
		"  v                Toggle persistent link mode (plain drag links)",
		"  V                Keyboard link: mark source task, press again on target",
		"",
		"File Operations:",
		"----------------",
		"  s                Save graph as JSON",
		"  S                Export as PNG image",
		"  o                Open a saved graph in current buffer",
		"  O                Open a saved graph in new buffer",
		"  y                Copy graph JSON to clipboard",
		"  p                Paste a task name from clipboard",
		"",
		"Buffer Operations:",
		"------------------",
		"  {                Switch to previous buffer",
		"  }                Switch to next buffer",
		"  n                Clear current graph",
		"  N                New graph in new buffer",
		"  x                Close current buffer",
		"",
		"General:",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit Taskmap",
	}

	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine >= len(helpLines) {
		startLine = len(helpLines) - visibleHeight
		if startLine < 0 {
			startLine = 0
		}
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	var result strings.Builder
	for i := startLine; i < endLine; i++ {
		result.WriteString(helpLines[i])
		result.WriteString("\n")
	}
	result.WriteString(statusStyle.Width(m.width).Render("j/k=scroll, Esc/q/?=close help"))
	return result.String()
}
