package main

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardflip/internal/config"
	"github.com/kpauljoseph/cardflip/internal/deck"
	"github.com/kpauljoseph/cardflip/internal/review"
	"github.com/kpauljoseph/cardflip/internal/session"
	"github.com/kpauljoseph/cardflip/internal/view"
	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var _ = Describe("Review screen", func() {
	var (
		d    *deck.Deck
		ctrl *review.Controller
		m    *model
	)

	press := func(names ...string) {
		for _, name := range names {
			m.Update(keyMsg(name))
		}
	}

	typeText := func(text string) {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}

	BeforeEach(func() {
		log := logger.New(logger.WithOutput(GinkgoWriter), logger.WithFlags(0))
		d = deck.New(
			models.NewCard("e1", "ea1", models.Easy),
			models.NewCard("m1", "ma1", models.Medium),
		)

		var err error
		ctrl, err = review.NewController(d, models.Easy, log, session.WithShuffle(session.InOrder))
		Expect(err).NotTo(HaveOccurred())
		m = newModel(ctrl)
		Expect(m.Init()).To(BeNil())
	})

	It("should show the first card with the short key list", func() {
		screen := m.View()

		Expect(screen).To(ContainSubstring("[EASY]  Card 1 of 1"))
		Expect(screen).To(ContainSubstring("Q: e1"))
		Expect(screen).To(ContainSubstring("next"))
		Expect(screen).NotTo(ContainSubstring("delete"))
	})

	It("should walk to the end of every level", func() {
		press("n")
		Expect(ctrl.Session().Tier()).To(Equal(models.Medium))
		Expect(m.View()).To(ContainSubstring("[MEDIUM]  Card 1 of 1"))

		press("n", "n")

		screen := m.View()
		Expect(ctrl.Session().Tier()).To(Equal(models.Hard))
		Expect(screen).To(ContainSubstring("[HARD]  Card 0 of 0"))
		Expect(screen).To(ContainSubstring(view.MsgAllCompleted))
	})

	It("should flip and report the first card", func() {
		press("f")
		Expect(m.View()).To(ContainSubstring("A: ea1"))

		press("p")
		Expect(m.View()).To(ContainSubstring(view.MsgFirstCard))
	})

	It("should add a card to the current level", func() {
		press("a")
		Expect(m.mode).To(Equal(adding))
		Expect(m.View()).To(ContainSubstring("Add a card"))

		typeText("new question")
		press("enter")
		Expect(m.focus).To(Equal(answerField))
		typeText("new answer")
		press("enter")

		Expect(m.mode).To(Equal(browsing))
		screen := m.View()
		Expect(screen).To(ContainSubstring(view.MsgAdded))
		Expect(screen).To(ContainSubstring("Q: new question"))
		Expect(d.FilterByTier(models.Easy)).To(HaveLen(2))
	})

	It("should type letters into the form instead of running commands", func() {
		press("a")
		typeText("q")

		Expect(m.quitting).To(BeFalse())
		Expect(m.inputs[questionField].Value()).To(Equal("q"))
	})

	It("should open the edit form filled with the current card", func() {
		press("e")

		Expect(m.mode).To(Equal(editing))
		Expect(m.inputs[questionField].Value()).To(Equal("e1"))
		Expect(m.inputs[answerField].Value()).To(Equal("ea1"))

		press("tab", "ctrl+u")
		typeText("better answer")
		press("enter")

		card, _ := ctrl.Session().CurrentCard()
		Expect(card.Question).To(Equal("e1"))
		Expect(card.Answer).To(Equal("better answer"))
		Expect(m.message).To(Equal(view.MsgEdited))
	})

	It("should keep the form open until both fields are filled", func() {
		press("a", "enter", "enter")

		Expect(m.mode).To(Equal(adding))
		Expect(m.focus).To(Equal(questionField))
		Expect(m.View()).To(ContainSubstring(msgIncomplete))
		Expect(d.Len()).To(Equal(2))
	})

	It("should leave the deck alone when a form is cancelled", func() {
		press("a")
		typeText("never saved")
		press("esc")

		Expect(m.mode).To(Equal(browsing))
		Expect(m.inputs[questionField].Value()).To(BeEmpty())
		Expect(d.Len()).To(Equal(2))
	})

	It("should delete until nothing is left", func() {
		press("d")
		Expect(m.message).To(Equal(view.MsgDeleted))
		Expect(d.Len()).To(Equal(1))

		press("e")
		Expect(m.mode).To(Equal(browsing))
		Expect(m.View()).To(ContainSubstring(view.MsgNoCards))

		press("d")
		Expect(m.message).To(Equal(view.MsgNoCards))
		Expect(d.Len()).To(Equal(1))
	})

	It("should toggle level counts and the full key list", func() {
		press("s")
		Expect(m.View()).To(ContainSubstring("EASY     1"))

		press("?")
		Expect(m.help.ShowAll).To(BeTrue())
		Expect(m.View()).To(ContainSubstring("delete"))

		press("s", "?")
		Expect(m.View()).NotTo(ContainSubstring("EASY     1"))
		Expect(m.help.ShowAll).To(BeFalse())
	})

	It("should quit on q", func() {
		_, cmd := m.Update(keyMsg("q"))

		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.QuitMsg{}))
		Expect(m.View()).To(BeEmpty())
	})

	It("should quit on ctrl+c even inside a form", func() {
		press("a")
		_, cmd := m.Update(keyMsg("ctrl+c"))

		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.QuitMsg{}))
	})
})

var _ = Describe("buildDeck", func() {
	var (
		testDir string
		log     *logger.Logger
	)

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "cardflip-test-*")
		Expect(err).NotTo(HaveOccurred())
		log = logger.New(logger.WithOutput(GinkgoWriter), logger.WithFlags(0))
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	It("should start from the built-in bank", func() {
		d, err := buildDeck(context.Background(), config.Default(), log)

		Expect(err).NotTo(HaveOccurred())
		Expect(d.Len()).To(BeNumerically(">", 0))
	})

	It("should replace the built-in bank when asked", func() {
		path := filepath.Join(testDir, "cards.yaml")
		Expect(os.WriteFile(path, []byte("cards:\n  - question: q\n    answer: a\n    difficulty: hard\n"), 0644)).To(Succeed())

		cfg := config.Default()
		cfg.CardBank = path
		off := false
		cfg.IncludeBuiltin = &off

		d, err := buildDeck(context.Background(), cfg, log)

		Expect(err).NotTo(HaveOccurred())
		Expect(d.Len()).To(Equal(1))
		Expect(d.FilterByTier(models.Hard)).To(HaveLen(1))
	})

	It("should fail for a missing PDF directory", func() {
		cfg := config.Default()
		cfg.PDFSourceDir = filepath.Join(testDir, "missing")

		_, err := buildDeck(context.Background(), cfg, log)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("PDF directory does not exist"))
	})
})
