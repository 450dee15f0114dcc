package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryStatus_String(t *testing.T) {
	assert.Equal(t, "idle", SummaryIdle.String())
	assert.Equal(t, "loading", SummaryLoading.String())
	assert.Equal(t, "content", SummaryContent.String())
	assert.Equal(t, "error", SummaryError.String())
	assert.Equal(t, "unknown", SummaryStatus(99).String())
}

func TestSummaryState_Constructors(t *testing.T) {
	loading := SummaryLoadingState("a.txt")
	assert.Equal(t, SummaryLoading, loading.Status)
	assert.Equal(t, "a.txt", loading.FileName)

	content := SummaryContentState("a.txt", "short summary")
	assert.Equal(t, SummaryContent, content.Status)
	assert.Equal(t, "short summary", content.Summary)
	assert.Empty(t, content.Message)

	failed := SummaryErrorState("a.txt", "model offline")
	assert.Equal(t, SummaryError, failed.Status)
	assert.Equal(t, "model offline", failed.Message)
	assert.Empty(t, failed.Summary)

	var zero SummaryState
	assert.Equal(t, SummaryIdle, zero.Status)
}
