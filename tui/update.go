package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/op"
	"github.com/lifo-cli/lifo/query"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/mo"
	lua "github.com/yuin/gopher-lua"
)

// Update routes key presses to session actions and everything else to the components.
func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case ui.NotifyMsg, ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.confirm):
			return b, b.submit()
		case key.Matches(msg, b.keymap.undo):
			return b, b.undoLast()
		case key.Matches(msg, b.keymap.acceptSuggestion):
			if suggestion, ok := b.suggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
				b.suggestion = mo.None[string]()
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.refreshSuggestion()
	return b, cmd
}

func (b *statefulBubble) refreshSuggestion() {
	input := strings.TrimSpace(b.inputC.Value())
	if input == "" {
		b.suggestion = mo.None[string]()
		return
	}

	b.suggestion = query.Suggest(input)
	if s, ok := b.suggestion.Get(); ok && s == input {
		b.suggestion = mo.None[string]()
	}
}

// submit parses and applies the operation typed into the input.
func (b *statefulBubble) submit() tea.Cmd {
	line := strings.TrimSpace(b.inputC.Value())
	if line == "" {
		return nil
	}

	o, err := op.Parse(line)
	if err != nil {
		b.lastError = err
		return nil
	}

	var snapshot *stack.Stack[lua.LValue]
	if o.Kind.Mutates() {
		snapshot = b.stack.Clone()
	}

	r, err := o.Apply(b.stack)
	if err != nil {
		b.lastError = err
		return nil
	}

	b.lastError = nil
	b.inputC.Reset()
	b.suggestion = mo.None[string]()

	if snapshot != nil && r.Err() == nil {
		b.undo.Push(snapshot)
	}

	b.results = append(b.results, r)
	if len(b.results) > maxResults {
		b.results = b.results[len(b.results)-maxResults:]
	}

	if err := query.RememberOps([]op.Op{o}); err != nil {
		log.Warnf("failed to remember %q: %v", o, err)
	}

	return notifyFor(o, r)
}

func notifyFor(o op.Op, r *op.Result) tea.Cmd {
	if r.Err() != nil {
		return nil
	}

	switch o.Kind {
	case op.Push:
		return ui.Notify(fmt.Sprintf("%s pushed %s", icon.Get(icon.Push), o.Arg))
	case op.Pop:
		return ui.Notify(fmt.Sprintf("%s popped", icon.Get(icon.Pop)))
	case op.Clear:
		return ui.Notify(fmt.Sprintf("%s cleared", icon.Get(icon.Empty)))
	default:
		return nil
	}
}

// undoLast restores the stack to the snapshot taken before the latest mutation.
func (b *statefulBubble) undoLast() tea.Cmd {
	snapshot, ok := b.undo.PopOption().Get()
	if !ok {
		return ui.Notify("nothing to undo")
	}

	b.stack = snapshot
	log.Debugf("undo restored %d elements", snapshot.Len())
	return ui.Notify(fmt.Sprintf("%s undone, top is %s", icon.Get(icon.Success), b.top()))
}

func (b *statefulBubble) top() string {
	if v, ok := b.stack.PeekOption().Get(); ok {
		return script.Format(v)
	}
	return icon.Get(icon.Empty)
}
