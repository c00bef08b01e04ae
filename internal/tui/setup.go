package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"game-library/internal/config"
	"game-library/internal/display"
	"game-library/internal/domain"
	"game-library/internal/theme"
)

// SetupModel is the model for the initial setup TUI
type SetupModel struct {
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
}

// NewSetupModel creates a new setup model
func NewSetupModel() SetupModel {
	themes := theme.ListThemes()
	currentTheme, _ := theme.GetTheme(themes[0])

	return SetupModel{
		themes:        themes,
		selectedIndex: 0,
		currentTheme:  currentTheme,
		width:         100, // default width
		height:        30,  // default height
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				t, _ := theme.GetTheme(m.themes[m.selectedIndex])
				m.currentTheme = t
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				t, _ := theme.GetTheme(m.themes[m.selectedIndex])
				m.currentTheme = t
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			// save theme selection
			selectedTheme := m.themes[m.selectedIndex]
			if err := config.UpdateTheme(selectedTheme); err != nil {
				// if saving fails, just continue
				fmt.Printf("Warning: failed to save theme: %v\n", err)
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Setup cancelled.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	leftWidth := m.width / 3
	if leftWidth < 30 {
		leftWidth = 30
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	leftContent := m.renderThemeList(leftWidth)
	rightContent := m.renderPreview(styles, rightWidth)

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1).
		Render(leftContent)

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1).
		Render(rightContent)

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := styles.TUITitle.Render("GameVault Initial Setup")
	subtitle := styles.TUISubtitle.Render("Select a theme to get started")

	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderThemeList(width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Available Themes")

	b.WriteString(title)
	b.WriteString("\n\n")

	for i, themeName := range m.themes {
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
		}

		line := fmt.Sprintf("%s%s", prefix, themeName)

		if i == m.selectedIndex {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true).
				Width(width - 4).
				Render(line)
		} else {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.TextSecondary)).
				Width(width - 4).
				Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m SetupModel) renderPreview(styles *theme.Styles, width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Preview")

	b.WriteString(title)
	b.WriteString("\n\n")

	sampleGames := []*domain.Game{
		{
			ID:    "sample-1",
			Title: "The Legend of Zelda: Ocarina of Time",
			Year:  intPointer(1998),
			Month: intPointer(11),
			Stars: floatPointer(5),
			Genre: domain.TagList{{Name: "Adventure"}},
			AgeRatings: []domain.AgeRating{
				{Category: 1, Rating: 10},
			},
		},
		{
			ID:    "sample-2",
			Title: "Doom Eternal",
			Year:  intPointer(2020),
			Stars: floatPointer(3),
			Genre: domain.TagList{{Name: "Shooter"}},
			AgeRatings: []domain.AgeRating{
				{Category: 2, Rating: 18},
			},
		},
		{
			ID:    "sample-3",
			Title: "Unreleased Prototype",
			Genre: domain.TagList{{Name: "Puzzle"}},
		},
	}

	for i, game := range sampleGames {
		if i > 0 {
			sepWidth := width - 4
			if sepWidth < 1 {
				sepWidth = 1
			}
			sep := strings.Repeat("─", sepWidth)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.Separator)).
				Render(sep))
			b.WriteString("\n")
		}

		b.WriteString(m.renderGamePreview(styles, game))
	}

	return b.String()
}

func (m SetupModel) renderGamePreview(styles *theme.Styles, game *domain.Game) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.currentTheme.TextPrimary)).
		Bold(true)
	b.WriteString(titleStyle.Render(game.Title))
	b.WriteString("\n")

	ratingStyle := styles.UnratedRow
	if game.Stars != nil {
		switch {
		case *game.Stars >= 4:
			ratingStyle = styles.HighRatingRow
		case *game.Stars >= 2.5:
			ratingStyle = styles.MediumRatingRow
		default:
			ratingStyle = styles.LowRatingRow
		}
	}

	infoLine := fmt.Sprintf("  %s | %s",
		ratingStyle.Render(display.FormatStars(game.Stars)),
		display.FormatReleaseDate(game),
	)
	b.WriteString(infoLine)
	b.WriteString("\n")

	detailLine := "  "
	detailLine += lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.currentTheme.Info)).
		Render(display.FormatTags(game.Genre, 30))
	if len(game.AgeRatings) > 0 {
		detailLine += " " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextMuted)).
			Render(display.FormatAgeRating(game))
	}
	b.WriteString(detailLine)
	b.WriteString("\n\n")

	return b.String()
}

func intPointer(v int) *int {
	return &v
}

func floatPointer(v float64) *float64 {
	return &v
}
