package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_Defaults(t *testing.T) {
	b := NewBar(nil, nil)

	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, 80, b.Width())
	assert.Contains(t, b.View(), "Ready")
}

func TestBar_LoadingState(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateLoading)

	assert.Contains(t, b.View(), "Loading")
}

func TestBar_ErrorStateShowsMessage(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateError)
	b.SetMessage("backend unreachable")

	assert.Contains(t, b.View(), "Error: backend unreachable")
}

func TestBar_ErrorStateWithoutMessage(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateError)

	assert.Contains(t, b.View(), "Error")
}

func TestBar_ItemCount(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateResults)
	b.SetItemCount(7)

	assert.Contains(t, b.View(), "7 items")
}

func TestBar_ResultsStateShowsResultHints(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateResults)
	b.SetItemCount(3)

	assert.Contains(t, b.View(), "new search")
}

func TestBar_Clear(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("boom")
	b.SetItemCount(5)

	b.Clear()

	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
	assert.Zero(t, b.ItemCount())
}
