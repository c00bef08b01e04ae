package catalog

import (
	"sort"

	"game-library/internal/domain"
)

// Phase tracks the load lifecycle of a view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
)

// revealDelayTicks is how many render ticks a ready view waits before it
// is revealed, letting layout settle so restored offsets apply to final
// geometry.
const revealDelayTicks = 2

// ViewState is the persisted slice of a view's selection: the active
// filter, sort field and direction, keyed by a prefix in the preference
// store.
type ViewState struct {
	Selection Selection `json:"selection"`
	SortField SortField `json:"sortField"`
	Ascending bool      `json:"ascending"`
}

// StateStore persists view state across runs.
type StateStore interface {
	SaveViewState(prefix string, st ViewState) error
	LoadViewState(prefix string) (ViewState, bool, error)
}

// View owns the raw catalog plus the filter/sort selection and derives
// the display list from them. The derived list is memoized and only
// recomputed after a mutation. Mutation handlers patch the raw list in
// place by id, preserving pre-sort order.
type View struct {
	prefix string
	store  StateStore

	games   []*domain.Game
	members map[string]bool // selected collection's member ids

	state ViewState

	phase       Phase
	revealTicks int

	derived []*domain.Game
	dirty   bool
}

// NewView creates a view keyed by prefix. A nil store disables
// persistence. A previously saved selection for the prefix is restored;
// otherwise the view starts at "all", sorted by title A→Z.
func NewView(prefix string, store StateStore) *View {
	v := &View{
		prefix: prefix,
		store:  store,
		state: ViewState{
			Selection: SelectAll(),
			SortField: SortTitle,
			Ascending: true,
		},
		phase: PhaseIdle,
		dirty: true,
	}

	if store != nil {
		if st, ok, err := store.LoadViewState(prefix); err == nil && ok {
			v.state = st
		}
	}

	return v
}

func (v *View) Phase() Phase          { return v.phase }
func (v *View) State() ViewState      { return v.state }
func (v *View) Selection() Selection  { return v.state.Selection }
func (v *View) SortField() SortField  { return v.state.SortField }
func (v *View) Ascending() bool       { return v.state.Ascending }
func (v *View) Games() []*domain.Game { return v.games }

// Begin marks the view loading. The reveal gate re-arms so a reload
// fades back in after layout settles.
func (v *View) Begin() {
	v.phase = PhaseLoading
	v.revealTicks = 0
}

// Loaded replaces the raw catalog with a freshly fetched list.
func (v *View) Loaded(games []*domain.Game) {
	v.games = games
	v.phase = PhaseReady
	v.revealTicks = 0
	v.dirty = true
}

// Failed leaves the list empty; the error is the caller's to report.
// No retry happens at this layer.
func (v *View) Failed() {
	v.games = nil
	v.phase = PhaseReady
	v.revealTicks = 0
	v.dirty = true
}

// Tick advances the reveal gate by one render tick.
func (v *View) Tick() {
	if v.phase == PhaseReady && v.revealTicks < revealDelayTicks {
		v.revealTicks++
	}
}

// Revealed reports whether content may be shown: data is loaded and the
// settle delay has elapsed.
func (v *View) Revealed() bool {
	return v.phase == PhaseReady && v.revealTicks >= revealDelayTicks
}

// SetSelection switches the active filter dimension and value.
func (v *View) SetSelection(sel Selection) {
	v.state.Selection = sel
	v.dirty = true
	v.persist()
}

// SetSort sets the sort field and wanted direction.
func (v *View) SetSort(field SortField, ascending bool) {
	v.state.SortField = field
	v.state.Ascending = ascending
	v.dirty = true
	v.persist()
}

// ToggleDirection flips the wanted sort direction.
func (v *View) ToggleDirection() {
	v.state.Ascending = !v.state.Ascending
	v.dirty = true
	v.persist()
}

// SetCollectionMembers installs the member-id set the collection filter
// tests against.
func (v *View) SetCollectionMembers(members map[string]bool) {
	v.members = members
	v.dirty = true
}

func (v *View) persist() {
	if v.store == nil {
		return
	}
	// persistence is best effort; a failed write only loses a preference
	_ = v.store.SaveViewState(v.prefix, v.state)
}

// Items returns the filtered, sorted display list. The result is cached
// until the games, selection or sort change.
func (v *View) Items() []*domain.Game {
	if !v.dirty {
		return v.derived
	}

	pred := Predicate(v.state.Selection, v.members)
	out := make([]*domain.Game, 0, len(v.games))
	for _, g := range v.games {
		if pred(g) {
			out = append(out, g)
		}
	}

	cmp := Comparator(v.state.SortField, v.state.Ascending)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})

	v.derived = out
	v.dirty = false
	return v.derived
}

// ApplyUpdate replaces the game with the same id in place, leaving every
// other entry and the pre-sort order untouched. Returns false when the id
// is unknown.
func (v *View) ApplyUpdate(game *domain.Game) bool {
	if game == nil {
		return false
	}
	for i, g := range v.games {
		if g.ID == game.ID {
			v.games[i] = game
			v.dirty = true
			return true
		}
	}
	return false
}

// ApplyDelete removes the game with the given id. Returns false when the
// id is unknown.
func (v *View) ApplyDelete(id string) bool {
	for i, g := range v.games {
		if g.ID == id {
			v.games = append(v.games[:i], v.games[i+1:]...)
			v.dirty = true
			return true
		}
	}
	return false
}

// ApplyAdd appends a newly created game.
func (v *View) ApplyAdd(game *domain.Game) {
	if game == nil {
		return
	}
	v.games = append(v.games, game)
	v.dirty = true
}
