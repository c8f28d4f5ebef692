package status

import (
	"fmt"
)

const (
	EmojiRenamed  = "✅"
	EmojiMissing  = "🔍"
	EmojiFailed   = "❌"
	EmojiProgress = "⏳"
	EmojiComplete = "✅"

	MsgProgress = "%s Progress: %d/%d (%.0f%%)"
)

// OutcomeFormatter defines how store outcomes and progress should be formatted
type OutcomeFormatter interface {
	// FormatOutcome formats the outcome of one store code
	FormatOutcome(code string, outcome Outcome, err error) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
}

// DefaultFormatter provides a default implementation of OutcomeFormatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatOutcome formats a store outcome with emojis
func (f *DefaultFormatter) FormatOutcome(code string, outcome Outcome, err error) string {
	switch outcome {
	case Renamed:
		return fmt.Sprintf("%s Renamed %s", EmojiRenamed, code)
	case SourceMissing:
		return fmt.Sprintf("%s Missing %s", EmojiMissing, code)
	case Failed:
		if err != nil {
			return fmt.Sprintf("%s Failed %s: %v", EmojiFailed, code, err)
		}
		return fmt.Sprintf("%s Failed %s", EmojiFailed, code)
	default:
		return fmt.Sprintf("… Pending %s", code)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	if current < 0 {
		current = 0
	}
	if total < 0 {
		total = 0
	}

	var percentage float64
	if total > 0 {
		percentage = float64(current) / float64(total) * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	if current >= total {
		return fmt.Sprintf(MsgProgress, EmojiComplete, current, total, percentage)
	}
	return fmt.Sprintf(MsgProgress, EmojiProgress, current, total, percentage)
}
