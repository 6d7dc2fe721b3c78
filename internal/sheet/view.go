package sheet

import "strings"

// Mode selects which fields a surface shows.
type Mode string

const (
	ModeMorning  Mode = "morning"
	ModeEvening  Mode = "evening"
	ModeComplete Mode = "complete"
	ModeCustom   Mode = "custom"
)

// Modes lists the view modes in tab order.
var Modes = []Mode{ModeMorning, ModeEvening, ModeComplete, ModeCustom}

var (
	morningFields = []FieldID{
		FieldTask, FieldMainType, FieldSubType, FieldUnplan,
		FieldJobNo, FieldClient, FieldEst, FieldRate,
	}

	eveningFields = []FieldID{
		FieldTaskReference, FieldAct, FieldTarget, FieldOutcome,
		FieldCFDate, FieldTotalEst, FieldStatus,
	}

	// canonicalFields is the complete view and the order custom views keep.
	canonicalFields = append(append([]FieldID{}, morningFields...),
		FieldAct, FieldTarget, FieldOutcome, FieldCFDate, FieldTotalEst, FieldStatus)
)

// CanonicalFields returns the full field order used by the complete and
// custom views.
func CanonicalFields() []FieldID {
	return append([]FieldID(nil), canonicalFields...)
}

// ParseMode maps a tab name to a Mode. Unknown names fall back to complete.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMorning:
		return ModeMorning
	case ModeEvening:
		return ModeEvening
	case ModeCustom:
		return ModeCustom
	default:
		return ModeComplete
	}
}

func (m Mode) Title() string {
	switch m {
	case ModeMorning:
		return "Morning Entry"
	case ModeEvening:
		return "Evening Review"
	case ModeCustom:
		return "Custom View"
	default:
		return "Complete View"
	}
}

// Visibility holds the custom view's per-field inclusion flags. A field with
// no entry is visible.
type Visibility map[FieldID]bool

// NewVisibility returns a Visibility with every canonical field enabled.
func NewVisibility() Visibility {
	v := make(Visibility, len(canonicalFields))
	for _, id := range canonicalFields {
		v[id] = true
	}
	return v
}

func (v Visibility) Visible(id FieldID) bool {
	on, ok := v[id]
	return !ok || on
}

func (v Visibility) clone() Visibility {
	c := make(Visibility, len(v))
	for k, on := range v {
		c[k] = on
	}
	return c
}

// Projection is the ordered field list a surface renders, with labels
// aligned index for index.
type Projection struct {
	Mode   Mode
	IDs    []FieldID
	Labels []string
}

// Project computes the visible fields for mode. The visibility set is only
// consulted in custom mode.
func Project(mode Mode, visibility Visibility) Projection {
	var ids []FieldID
	switch mode {
	case ModeMorning:
		ids = append(ids, morningFields...)
	case ModeEvening:
		ids = append(ids, eveningFields...)
	case ModeCustom:
		for _, id := range canonicalFields {
			if visibility.Visible(id) {
				ids = append(ids, id)
			}
		}
	default:
		mode = ModeComplete
		ids = append(ids, canonicalFields...)
	}

	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = Label(id)
	}
	return Projection{Mode: mode, IDs: ids, Labels: labels}
}

// ViewState owns the active mode and the custom visibility set. Every change
// recomputes the projection and hands it to the listeners before returning.
type ViewState struct {
	mode       Mode
	visibility Visibility
	current    Projection
	listeners  []func(Projection)
}

func NewViewState(mode Mode) *ViewState {
	vs := &ViewState{mode: ParseMode(string(mode)), visibility: NewVisibility()}
	vs.current = Project(vs.mode, vs.visibility)
	return vs
}

// OnChange registers fn and calls it once with the current projection.
func (vs *ViewState) OnChange(fn func(Projection)) {
	vs.listeners = append(vs.listeners, fn)
	fn(vs.current)
}

func (vs *ViewState) Mode() Mode {
	return vs.mode
}

func (vs *ViewState) Projection() Projection {
	return vs.current
}

// Visibility returns a copy of the custom visibility set.
func (vs *ViewState) Visibility() Visibility {
	return vs.visibility.clone()
}

func (vs *ViewState) SetMode(mode Mode) {
	vs.mode = ParseMode(string(mode))
	vs.publish()
}

// Toggle flips the custom visibility of id and returns the new flag.
func (vs *ViewState) Toggle(id FieldID) bool {
	on := !vs.visibility.Visible(id)
	vs.visibility[id] = on
	vs.publish()
	return on
}

func (vs *ViewState) SetVisible(id FieldID, on bool) {
	vs.visibility[id] = on
	vs.publish()
}

func (vs *ViewState) publish() {
	vs.current = Project(vs.mode, vs.visibility)
	for _, fn := range vs.listeners {
		fn(vs.current)
	}
}
