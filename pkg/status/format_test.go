package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestDefaultFormatter tests outcome formatting
func TestDefaultFormatter(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		outcome     Outcome
		err         error
		want        string
		description string
	}{
		{
			name:        "renamed",
			code:        "00012D100",
			outcome:     Renamed,
			want:        "✅ Renamed 00012D100",
			description: "should show success symbol for renamed stores",
		},
		{
			name:        "missing",
			code:        "00007D101",
			outcome:     SourceMissing,
			want:        "🔍 Missing 00007D101",
			description: "should show search symbol for missing source",
		},
		{
			name:        "failed_with_reason",
			code:        "00099D100",
			outcome:     Failed,
			err:         errors.New("access denied"),
			want:        "❌ Failed 00099D100: access denied",
			description: "should include the reason for failures",
		},
		{
			name:        "failed_without_reason",
			code:        "00099D100",
			outcome:     Failed,
			want:        "❌ Failed 00099D100",
			description: "should handle failures without a reason",
		},
		{
			name:        "pending",
			code:        "00001D100",
			outcome:     Pending,
			want:        "… Pending 00001D100",
			description: "should handle the zero value",
		},
	}

	formatter := NewDefaultFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatOutcome(tt.code, tt.outcome, tt.err)
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

// 🧪 TestProgressFormatting tests progress message formatting
func TestProgressFormatting(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected string
	}{
		{name: "zero_progress", current: 0, total: 10, expected: fmt.Sprintf(MsgProgress, EmojiProgress, 0, 10, 0.0)},
		{name: "half_progress", current: 5, total: 10, expected: fmt.Sprintf(MsgProgress, EmojiProgress, 5, 10, 50.0)},
		{name: "complete", current: 10, total: 10, expected: fmt.Sprintf(MsgProgress, EmojiComplete, 10, 10, 100.0)},
		{name: "zero_total", current: 0, total: 0, expected: fmt.Sprintf(MsgProgress, EmojiComplete, 0, 0, 0.0)},
		{name: "current_exceeds_total", current: 15, total: 10, expected: fmt.Sprintf(MsgProgress, EmojiComplete, 15, 10, 100.0)},
		{name: "negative_values", current: -1, total: -1, expected: fmt.Sprintf(MsgProgress, EmojiComplete, 0, 0, 0.0)},
	}

	formatter := NewDefaultFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.FormatProgress(tt.current, tt.total))
		})
	}
}
