// Package ui provides transient terminal notifications for bubbletea programs.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/style"
)

// NotificationDuration is how long a notification stays on screen.
const NotificationDuration = 3 * time.Second

// Model holds the notification currently on screen, if any.
type Model struct {
	notification string
}

// NotifyMsg carries the text of a new notification.
type NotifyMsg string

// ClearNotificationMsg resets the visual notification state.
type ClearNotificationMsg struct{}

// Notify returns a tea.Cmd that raises a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg(text)
	}
}

// ClearNotification returns a delayed tea.Cmd that clears the current notification.
func ClearNotification() tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Update processes notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.notification = string(msg)
		return ClearNotification()
	case ClearNotificationMsg:
		m.notification = ""
	}
	return nil
}

// Notification returns the text currently shown.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + style.Fg(color.Gray)(m.notification)
	return strings.Join(lines, "\n")
}
