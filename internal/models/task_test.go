package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for token, want := range map[string]Status{
		"todo":        StatusTodo,
		"in_progress": StatusInProgress,
		"done":        StatusDone,
	} {
		got, ok := ParseStatus(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, got)
	}
}

func TestParseStatusRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{
		"", "Todo", "DONE", "in-progress", "inprogress", "archived", "done ",
	} {
		_, ok := ParseStatus(token)
		assert.False(t, ok, token)
	}
}
