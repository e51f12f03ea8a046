package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/op"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

// maxResults bounds the scrollback of applied operations.
const maxResults = 5

// statefulBubble is the session model: the stack being edited, its undo history and the UI components.
type statefulBubble struct {
	stack *stack.Stack[lua.LValue]
	// undo holds snapshots taken before each successful mutation, most recent on top.
	undo stack.Stack[*stack.Stack[lua.LValue]]

	keymap   *keymap
	inputC   textinput.Model
	helpC    help.Model
	notifier *ui.Model

	results    []*op.Result
	lastError  error
	suggestion mo.Option[string]

	width, height int
}

func newBubble(options *Options) *statefulBubble {
	input := textinput.New()
	input.Prompt = viper.GetString(key.TUIPrompt)
	input.Placeholder = "push 3, where x > 2, select x * 2, max ..."
	input.Focus()

	b := &statefulBubble{
		stack:      stack.Of(script.ParseAll(options.Values)...),
		keymap:     newKeymap(),
		inputC:     input,
		helpC:      help.New(),
		notifier:   &ui.Model{},
		suggestion: mo.None[string](),
		width:      80,
	}

	if width, height, err := util.TerminalSize(); err == nil {
		b.resize(width, height)
	}

	return b
}

func (b *statefulBubble) resize(width, height int) {
	b.width, b.height = width, height
	b.helpC.Width = width
	b.inputC.Width = width - len(b.inputC.Prompt) - 1
}

// Init starts the cursor blinking.
func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}
