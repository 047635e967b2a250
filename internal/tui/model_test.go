package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerohunger/internal/domain"
	"zerohunger/internal/transcript"
	"zerohunger/internal/yield"
)

type stubAssistant struct {
	asked []string
}

func (s *stubAssistant) Respond(text string) string {
	s.asked = append(s.asked, text)
	return "reply to " + text
}

func (s *stubAssistant) EstimateYield(in yield.Inputs) (float64, error) {
	return in.Estimate()
}

func newTestModel(delay time.Duration) (Model, *stubAssistant, *transcript.Transcript) {
	svc := &stubAssistant{}
	tr := transcript.New()
	m := New(svc, tr, delay)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model), svc, tr
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestViewBeforeResize(t *testing.T) {
	m := New(&stubAssistant{}, transcript.New(), 0)
	assert.Equal(t, "Loading...", m.View())
}

func TestChatSubmitDeliversReply(t *testing.T) {
	m, svc, tr := newTestModel(0)
	m.input.SetValue("  What is zero hunger?  ")

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"  What is zero hunger?  "}, svc.asked)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 1, m.pending)

	entries := tr.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, transcript.User, entries[0].Sender)

	msg := cmd()
	reply, ok := msg.(replyMsg)
	require.True(t, ok)
	assert.Equal(t, "reply to   What is zero hunger?  ", reply.text)

	next, _ = m.Update(msg)
	m = next.(Model)
	assert.Equal(t, 0, m.pending)
	entries = tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, transcript.Bot, entries[1].Sender)
	assert.Equal(t, reply.text, entries[1].Message)
	assert.Contains(t, m.View(), "Assistant")
}

func TestChatSubmitWithDelaySchedulesReply(t *testing.T) {
	m, _, tr := newTestModel(time.Second)
	m.input.SetValue("hi")

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, "Thinking...", m.status)
	// Only the user turn is visible until the tick fires.
	assert.Equal(t, 1, tr.Len())
}

func TestChatIgnoresBlankInput(t *testing.T) {
	m, svc, tr := newTestModel(0)
	m.input.SetValue("   ")

	_, cmd := m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Empty(t, svc.asked)
	assert.Equal(t, 0, tr.Len())
}

func TestTabSwitching(t *testing.T) {
	m, _, _ := newTestModel(0)
	assert.Equal(t, chatTab, m.active)

	next, _ := m.Update(key(tea.KeyTab))
	m = next.(Model)
	assert.Equal(t, yieldTab, m.active)
	assert.False(t, m.input.Focused())
	assert.Contains(t, m.View(), "Simple Crop Yield Predictor")

	next, _ = m.Update(key(tea.KeyShiftTab))
	m = next.(Model)
	assert.Equal(t, chatTab, m.active)
	assert.True(t, m.input.Focused())
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(0)
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func yieldModel(t *testing.T) Model {
	t.Helper()
	m, _, _ := newTestModel(0)
	next, _ := m.Update(key(tea.KeyTab))
	return next.(Model)
}

func TestYieldFormSubmit(t *testing.T) {
	m := yieldModel(t)
	m.form.inputs[0].SetValue("1")
	m.form.inputs[1].SetValue("500")
	m.form.inputs[2].SetValue("0")

	next, _ := m.Update(key(tea.KeyEnter))
	m = next.(Model)
	assert.Empty(t, m.form.err)
	assert.Equal(t, "🧑‍🌾 Estimated Yield for Wheat on 1.0 acres: 4.50 tons", m.form.result)
}

func TestYieldFormSelectors(t *testing.T) {
	m := yieldModel(t)

	next, _ := m.Update(key(tea.KeyRight))
	m = next.(Model)
	assert.Equal(t, yield.Rice, m.form.crops[m.form.crop])

	next, _ = m.Update(key(tea.KeyLeft))
	next, _ = next.Update(key(tea.KeyLeft))
	m = next.(Model)
	assert.Equal(t, yield.Sugarcane, m.form.crops[m.form.crop])

	next, _ = m.Update(key(tea.KeyDown))
	next, _ = next.Update(key(tea.KeyRight))
	m = next.(Model)
	assert.Equal(t, soilField, m.form.focused)
	assert.Equal(t, yield.Sandy, m.form.soils[m.form.soil])

	next, _ = m.Update(key(tea.KeyUp))
	next, _ = next.Update(key(tea.KeyUp))
	m = next.(Model)
	assert.Equal(t, fertilizerField, m.form.focused)
}

func TestYieldFormRejectsInvalidInput(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		m := yieldModel(t)
		m.form.inputs[1].SetValue("lots")

		next, _ := m.Update(key(tea.KeyEnter))
		m = next.(Model)
		assert.Contains(t, m.form.err, "Enter Rainfall (in mm)")
		assert.Empty(t, m.form.result)
	})

	t.Run("out of range is not clamped", func(t *testing.T) {
		m := yieldModel(t)
		m.form.inputs[0].SetValue("250")

		next, _ := m.Update(key(tea.KeyEnter))
		m = next.(Model)
		assert.Contains(t, m.form.err, domain.ErrInvalidInput.Error())
		assert.Empty(t, m.form.result)
	})
}

func TestYieldFormTyping(t *testing.T) {
	m := yieldModel(t)
	next, _ := m.Update(key(tea.KeyDown))
	next, _ = next.Update(key(tea.KeyDown))
	m = next.(Model)
	require.Equal(t, areaField, m.form.focused)

	m.form.inputs[0].SetValue("")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2.5")})
	m = next.(Model)
	assert.Equal(t, "2.5", m.form.inputs[0].Value())
}
