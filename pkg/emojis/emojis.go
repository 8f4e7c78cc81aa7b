// Package emojis holds the reactions the bot puts on game messages.
package emojis

const (
	// Reminder marks a message that scheduled a reminder.
	Reminder = "⏰"
	// Cancelled marks a message that removed a reminder.
	Cancelled = "👋"
	// Warning marks a message the bot could not handle.
	Warning = "⚠️"
)
