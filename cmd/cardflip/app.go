package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpauljoseph/cardflip/internal/review"
	"github.com/kpauljoseph/cardflip/internal/view"
)

const msgIncomplete = "A card needs a question and an answer."

type mode int

const (
	browsing mode = iota
	adding
	editing
)

const (
	questionField = iota
	answerField
)

// model is the review screen. All card state lives in the controller; the
// model only tracks which form is open and the last message.
type model struct {
	ctrl     *review.Controller
	mode     mode
	inputs   [2]textinput.Model
	focus    int
	help     help.Model
	message  string
	status   bool
	quitting bool
}

var _ tea.Model = (*model)(nil)

func newModel(ctrl *review.Controller) *model {
	m := &model{
		ctrl: ctrl,
		help: help.New(),
	}

	m.inputs[questionField] = textinput.New()
	m.inputs[questionField].Prompt = "Question: "
	m.inputs[questionField].Placeholder = "What do you want to ask?"

	m.inputs[answerField] = textinput.New()
	m.inputs[answerField].Prompt = "Answer:   "
	m.inputs[answerField].Placeholder = "And the answer?"

	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == browsing {
			return m.browse(msg)
		}
		return m.fill(msg)
	}

	if m.mode != browsing {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) browse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		outcome review.Outcome
		err     error
	)

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		outcome = m.ctrl.Next()
	case key.Matches(msg, keys.Prev):
		outcome = m.ctrl.Prev()
	case key.Matches(msg, keys.Flip):
		outcome = m.ctrl.Flip()
	case key.Matches(msg, keys.Add):
		return m, m.open(adding, "", "")
	case key.Matches(msg, keys.Edit):
		card, ok := m.ctrl.Session().CurrentCard()
		if !ok {
			m.message = view.Message(review.NoCards)
			return m, nil
		}
		return m, m.open(editing, card.Question, card.Answer)
	case key.Matches(msg, keys.Delete):
		outcome, err = m.ctrl.Delete()
	case key.Matches(msg, keys.Status):
		m.status = !m.status
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}

	if err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.message = view.Message(outcome)
	return m, nil
}

// open shows the form with the given starting text, question field first.
func (m *model) open(next mode, question, answer string) tea.Cmd {
	m.mode = next
	m.message = ""
	m.inputs[questionField].SetValue(question)
	m.inputs[answerField].SetValue(answer)
	m.inputs[questionField].CursorEnd()
	m.inputs[answerField].CursorEnd()
	return m.focusOn(questionField)
}

func (m *model) focusOn(field int) tea.Cmd {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[field].Focus()
}

func (m *model) close() {
	m.mode = browsing
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].Reset()
	}
}

func (m *model) fill(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, form.Cancel):
		m.close()
		m.message = ""
		return m, nil
	case key.Matches(msg, form.Switch):
		return m, m.focusOn((m.focus + 1) % len(m.inputs))
	case key.Matches(msg, form.Back):
		return m, m.focusOn((m.focus + len(m.inputs) - 1) % len(m.inputs))
	case key.Matches(msg, form.Submit):
		if m.focus == questionField {
			return m, m.focusOn(answerField)
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	question := strings.TrimSpace(m.inputs[questionField].Value())
	answer := strings.TrimSpace(m.inputs[answerField].Value())
	if question == "" || answer == "" {
		m.message = msgIncomplete
		if question == "" {
			return m.focusOn(questionField)
		}
		return nil
	}

	var (
		outcome review.Outcome
		err     error
	)
	if m.mode == adding {
		outcome = m.ctrl.Add(question, answer)
	} else {
		outcome, err = m.ctrl.Edit(question, answer)
	}
	m.close()

	if err != nil {
		m.message = err.Error()
		return nil
	}
	m.message = view.Message(outcome)
	return nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(view.Screen(m.ctrl.Session(), m.message))
	b.WriteString("\n")

	if m.mode != browsing {
		title := "Add a card"
		if m.mode == editing {
			title = "Edit card"
		}
		b.WriteString(title)
		b.WriteString("\n")
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.help.View(form))
		b.WriteString("\n")
		return b.String()
	}

	if m.status {
		b.WriteString(view.Counts(m.ctrl.Deck().CountByTier()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}
