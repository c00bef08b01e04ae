package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"game-library/internal/api"
	"game-library/internal/domain"
)

type gameForm struct {
	active  bool
	isNew   bool
	editing *domain.Game

	titleInput      textinput.Model
	summaryInput    textarea.Model
	yearInput       textinput.Model
	monthInput      textinput.Model
	dayInput        textinput.Model
	starsInput      textinput.Model
	genresInput     textinput.Model
	platformsInput  textinput.Model
	developersInput textinput.Model
	publishersInput textinput.Model

	focusedField int
	saving       bool
	err          string
}

const gameFormFields = 10

type collectionForm struct {
	active  bool
	isNew   bool
	editing *domain.Collection

	titleInput textinput.Model

	saving bool
	err    string
}

// renameForm renames a taxonomy tag or a category. The taxonomy list is
// cycled in place rather than typed.
type renameForm struct {
	active bool

	taxonomyIdx  int
	oldNameInput textinput.Model
	newNameInput textinput.Model

	focusedField int
	saving       bool
	err          string
}

// categoryTaxonomy is the pseudo-taxonomy slot for renaming categories.
const categoryTaxonomy = "categories"

func renameTargets() []string {
	targets := make([]string, 0, len(api.Taxonomies)+1)
	targets = append(targets, categoryTaxonomy)
	for _, t := range api.Taxonomies {
		targets = append(targets, string(t))
	}
	return targets
}

func newFormInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func (m *Model) initGameForm(game *domain.Game) {
	m.gameForm = gameForm{
		active: true,
		isNew:  game == nil,
	}

	m.gameForm.titleInput = newFormInput("Title", 200, 50)
	m.gameForm.titleInput.Focus()

	m.gameForm.summaryInput = textarea.New()
	m.gameForm.summaryInput.Placeholder = "Summary (optional)"
	m.gameForm.summaryInput.CharLimit = 2000
	m.gameForm.summaryInput.SetWidth(50)
	m.gameForm.summaryInput.SetHeight(3)

	m.gameForm.yearInput = newFormInput("Year (e.g. 1998)", 4, 20)
	m.gameForm.monthInput = newFormInput("Month (1-12)", 2, 20)
	m.gameForm.dayInput = newFormInput("Day (1-31)", 2, 20)
	m.gameForm.starsInput = newFormInput("Stars (0-5)", 4, 20)
	m.gameForm.genresInput = newFormInput("Genres, comma separated", 200, 50)
	m.gameForm.platformsInput = newFormInput("Platforms, comma separated", 200, 50)
	m.gameForm.developersInput = newFormInput("Developers, comma separated", 200, 50)
	m.gameForm.publishersInput = newFormInput("Publishers, comma separated", 200, 50)

	if game != nil {
		m.gameForm.editing = game
		m.gameForm.titleInput.SetValue(game.Title)
		m.gameForm.summaryInput.SetValue(game.Summary)
		if game.Year != nil {
			m.gameForm.yearInput.SetValue(strconv.Itoa(*game.Year))
		}
		if game.Month != nil {
			m.gameForm.monthInput.SetValue(strconv.Itoa(*game.Month))
		}
		if game.Day != nil {
			m.gameForm.dayInput.SetValue(strconv.Itoa(*game.Day))
		}
		if game.Stars != nil {
			m.gameForm.starsInput.SetValue(strconv.FormatFloat(*game.Stars, 'f', -1, 64))
		}
		m.gameForm.genresInput.SetValue(strings.Join(game.Genre.Names(), ", "))
		m.gameForm.platformsInput.SetValue(strings.Join(game.Platforms.Names(), ", "))
		m.gameForm.developersInput.SetValue(strings.Join(game.Developers.Names(), ", "))
		m.gameForm.publishersInput.SetValue(strings.Join(game.Publishers.Names(), ", "))
	}
}

// buildGame assembles a game from the form, validating as it goes. The
// id and fields the form does not cover carry over from the original.
func (f *gameForm) buildGame() (*domain.Game, error) {
	game := &domain.Game{}
	if f.editing != nil {
		copied := *f.editing
		game = &copied
	}

	game.Title = strings.TrimSpace(f.titleInput.Value())
	if game.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	game.Summary = strings.TrimSpace(f.summaryInput.Value())

	var err error
	if game.Year, err = parseOptionalInt(f.yearInput.Value(), "year"); err != nil {
		return nil, err
	}
	if game.Month, err = parseOptionalInt(f.monthInput.Value(), "month"); err != nil {
		return nil, err
	}
	if game.Day, err = parseOptionalInt(f.dayInput.Value(), "day"); err != nil {
		return nil, err
	}

	game.Stars = nil
	if v := strings.TrimSpace(f.starsInput.Value()); v != "" {
		stars, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("stars must be a number")
		}
		if stars < 0 || stars > 5 {
			return nil, fmt.Errorf("stars must be between 0 and 5")
		}
		game.Stars = &stars
	}

	game.Genre = parseTagNames(f.genresInput.Value())
	game.Platforms = parseTagNames(f.platformsInput.Value())
	game.Developers = parseTagNames(f.developersInput.Value())
	game.Publishers = parseTagNames(f.publishersInput.Value())

	if f.editing != nil {
		if err := game.Validate(); err != nil {
			return nil, err
		}
	}

	return game, nil
}

func parseOptionalInt(raw, field string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	return &v, nil
}

func parseTagNames(raw string) domain.TagList {
	var tags domain.TagList
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		tags = append(tags, domain.Tag{Name: name})
	}
	return tags
}

func (m *Model) initCollectionForm(collection *domain.Collection) {
	m.collectionForm = collectionForm{
		active:  true,
		isNew:   collection == nil,
		editing: collection,
	}
	m.collectionForm.titleInput = newFormInput("Collection title", 100, 50)
	m.collectionForm.titleInput.Focus()
	if collection != nil {
		m.collectionForm.titleInput.SetValue(collection.Title)
	}
}

func (f *collectionForm) buildCollection() (*domain.Collection, error) {
	collection := &domain.Collection{}
	if f.editing != nil {
		copied := *f.editing
		collection = &copied
	}

	collection.Title = strings.TrimSpace(f.titleInput.Value())
	if collection.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	return collection, nil
}

func (m *Model) initRenameForm() {
	m.renameForm = renameForm{active: true}
	m.renameForm.oldNameInput = newFormInput("Current name", 100, 40)
	m.renameForm.oldNameInput.Focus()
	m.renameForm.newNameInput = newFormInput("New name", 100, 40)
}

func (f *renameForm) target() string {
	return renameTargets()[f.taxonomyIdx]
}

func (f *renameForm) cycleTarget() {
	f.taxonomyIdx = (f.taxonomyIdx + 1) % len(renameTargets())
}
