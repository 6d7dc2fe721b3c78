// Package sheet holds the task sheet's field table, the view projector and the
// row derivation engine. Rendering surfaces read from here and send edits back
// through Engine.
package sheet

// FieldID is the key of a field within a Row.
type FieldID string

const (
	FieldTask          FieldID = "task"
	FieldMainType      FieldID = "mainType"
	FieldSubType       FieldID = "subType"
	FieldUnplan        FieldID = "unplan"
	FieldJobNo         FieldID = "jobNo"
	FieldClient        FieldID = "client"
	FieldEst           FieldID = "est"
	FieldRate          FieldID = "rate"
	FieldTaskReference FieldID = "taskReference"
	FieldAct           FieldID = "act"
	FieldTarget        FieldID = "target"
	FieldOutcome       FieldID = "outcome"
	FieldCFDate        FieldID = "cfDate"
	FieldTotalEst      FieldID = "totalEst"
	FieldStatus        FieldID = "status"
)

// Kind says what a field holds and which editor a surface should offer.
type Kind int

const (
	KindText Kind = iota
	KindChoice
	KindBool
	KindDate
	KindClock
	KindComputed
	KindSummary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindChoice:
		return "choice"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindClock:
		return "clock"
	case KindComputed:
		return "computed"
	case KindSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// DateLayout is the display and storage layout of date fields.
const DateLayout = "01/02/2006"

type Field struct {
	ID       FieldID
	Label    string
	Kind     Kind
	Options  []string
	ReadOnly bool
	// Source is the row key a read-only projection is drawn from.
	Source FieldID
}

// Editable reports whether surfaces may send edits for this field.
func (f Field) Editable() bool {
	return !f.ReadOnly
}

var fields = map[FieldID]Field{
	FieldTask:          {ID: FieldTask, Label: "Task", Kind: KindText},
	FieldMainType:      {ID: FieldMainType, Label: "Main Type", Kind: KindChoice, Options: CategoryOptions},
	FieldSubType:       {ID: FieldSubType, Label: "SubType", Kind: KindChoice, Options: SubcategoryOptions},
	FieldUnplan:        {ID: FieldUnplan, Label: "Unplan", Kind: KindBool},
	FieldJobNo:         {ID: FieldJobNo, Label: "Job No.", Kind: KindChoice, Options: JobOptions},
	FieldClient:        {ID: FieldClient, Label: "Client", Kind: KindText},
	FieldEst:           {ID: FieldEst, Label: "Est", Kind: KindClock, Options: TimeOptions},
	FieldRate:          {ID: FieldRate, Label: "Rate", Kind: KindComputed, ReadOnly: true},
	FieldTaskReference: {ID: FieldTaskReference, Label: "Task Info", Kind: KindSummary, ReadOnly: true, Source: FieldTask},
	FieldAct:           {ID: FieldAct, Label: "Act", Kind: KindClock, Options: TimeOptions},
	FieldTarget:        {ID: FieldTarget, Label: "Target", Kind: KindDate},
	FieldOutcome:       {ID: FieldOutcome, Label: "Outcome of the Task", Kind: KindText},
	FieldCFDate:        {ID: FieldCFDate, Label: "CF Date", Kind: KindDate},
	FieldTotalEst:      {ID: FieldTotalEst, Label: "Total Est", Kind: KindClock, Options: TimeOptions},
	FieldStatus:        {ID: FieldStatus, Label: "Status%", Kind: KindChoice, Options: StatusOptions},
}

// Lookup returns the definition of id.
func Lookup(id FieldID) (Field, bool) {
	f, ok := fields[id]
	return f, ok
}

// Label returns the display label of id, or the id itself when unknown.
func Label(id FieldID) string {
	if f, ok := fields[id]; ok {
		return f.Label
	}
	return string(id)
}
