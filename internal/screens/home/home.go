package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/progress"
	"github.com/abhisek/derivio/internal/router"
	"github.com/abhisek/derivio/internal/screen"
	"github.com/abhisek/derivio/internal/screens/assess"
	"github.com/abhisek/derivio/internal/screens/topics"
	"github.com/abhisek/derivio/internal/store"
	"github.com/abhisek/derivio/internal/tutor"
	"github.com/abhisek/derivio/internal/ui/components"
)

// HomeScreen is the main menu of the application. Its entries depend on the
// learner's phase: before the placement assessment the only way forward is
// taking it; afterwards the topic picker opens up.
type HomeScreen struct {
	tracker       *progress.Tracker
	hasTutor      bool
	menu          components.Menu
	menuLabels    []string
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, tracker *progress.Tracker, tut *tutor.Service) *HomeScreen {
	var (
		menuLabels []string
		items      []components.MenuItem
	)

	if tracker.Phase() == store.PhaseAssessment {
		menuLabels = []string{"TAKE ASSESSMENT", "EXIT"}
		items = []components.MenuItem{
			{Label: menuLabels[0], Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: assess.New(cat, tracker, tut)}
				}
			}},
			{Label: menuLabels[1], Action: func() tea.Cmd {
				return tea.Quit
			}},
		}
	} else {
		menuLabels = []string{"CHOOSE A TOPIC", "EXIT"}
		items = []components.MenuItem{
			{Label: menuLabels[0], Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: topics.New(cat, tracker, tut)}
				}
			}},
			{Label: menuLabels[1], Action: func() tea.Cmd {
				return tea.Quit
			}},
		}
	}

	mascotVariant := MascotIdle
	switch {
	case tracker.Phase() == store.PhaseAssessment:
		mascotVariant = MascotAlert
	case len(tracker.CompletedTopics()) == len(cat.Topics):
		mascotVariant = MascotCelebrating
	}

	return &HomeScreen{
		tracker:       tracker,
		hasTutor:      tut != nil,
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		mascotVariant: mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	if h.tracker.Phase() == store.PhaseAssessment {
		sections = append(sections, renderPlacementNote(cw))
	} else {
		sections = append(sections, renderStatsBar(
			h.tracker.Level().DisplayName(),
			len(h.tracker.CompletedTopics()),
			h.tracker.TotalScore(),
			cw, compact))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if !h.hasTutor {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
