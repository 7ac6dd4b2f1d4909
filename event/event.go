// Package event defines the platform events a component can receive.
// Event is a closed union: adapters switch over the concrete types and
// every shape, including ones the browser should never send, has a case.
package event

// Kind names an event shape on the wire.
type Kind string

const (
	KindInput  Kind = "input"
	KindSelect Kind = "select"
	KindClick  Kind = "click"
)

// Event is implemented only by the types in this package.
type Event interface {
	Kind() Kind
	isEvent()
}

// Input is the new text of an input or textarea.
type Input struct {
	Value string
}

// Option is one entry of a select element at the time of the change.
type Option struct {
	Value    string `json:"value" msgpack:"value"`
	Selected bool   `json:"selected" msgpack:"selected"`
}

// Select is a change on a select element. Value is the first selected value;
// Options carries the full option list so multi-selects can be resolved.
type Select struct {
	Value    string
	Multiple bool
	Options  []Option
}

// Click is a pointer click on a control.
type Click struct {
	X, Y   int
	Button int
	Alt    bool
	Ctrl   bool
	Shift  bool
	Meta   bool
}

// Unknown is any event whose kind is not recognised.
type Unknown struct {
	Name string
}

func (Input) Kind() Kind     { return KindInput }
func (Select) Kind() Kind    { return KindSelect }
func (Click) Kind() Kind     { return KindClick }
func (u Unknown) Kind() Kind { return Kind(u.Name) }

func (Input) isEvent()   {}
func (Select) isEvent()  {}
func (Click) isEvent()   {}
func (Unknown) isEvent() {}

// SelectedValues walks the full option list and returns the values whose
// selected flag is set, in list order. The result is never nil.
func SelectedValues(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Selected {
			values = append(values, o.Value)
		}
	}
	return values
}
