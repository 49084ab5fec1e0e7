package card

// Parameter names the dispatcher looks up. Lookups are case-sensitive on this
// fixed set; upstream tokenizers are expected to emit them verbatim.
const (
	// ParamType is the TYPE parameter carrying category tokens.
	ParamType = "TYPE"
	// ParamValue is the VALUE parameter (e.g. VALUE=URL on PHOTO).
	ParamValue = "VALUE"
)

// Property is one parsed name/parameters/values unit from a contact card.
//
// A Property is produced by an upstream tokenizer and consumed by
// Contact.AddProperty. The TYPE parameter uses set semantics: duplicate
// values collapse, and iteration order is insertion order, which keeps the
// first-token-wins fallback rules deterministic. All other parameters keep
// ordered-list semantics.
type Property struct {
	name   string
	params map[string][]string
	values []string
	bytes  []byte
}

// NewProperty returns an empty property ready for the tokenizer to fill.
func NewProperty() *Property {
	p := &Property{}
	p.Clear()
	return p
}

// SetName sets the property name (e.g. "FN", "ADR").
func (p *Property) SetName(name string) {
	p.name = name
}

// AddParameter appends one parameter value under the given parameter name.
//
// TYPE values that are already present are dropped.
func (p *Property) AddParameter(name string, value string) {
	existing := p.params[name]
	if name == ParamType {
		for _, v := range existing {
			if v == value {
				return
			}
		}
	}
	p.params[name] = append(existing, value)
}

// AddValue appends one raw value segment.
func (p *Property) AddValue(value string) {
	p.values = append(p.values, value)
}

// SetBytes attaches the opaque byte payload of a binary-valued property.
func (p *Property) SetBytes(b []byte) {
	p.bytes = b
}

// Name returns the property name.
func (p *Property) Name() string {
	return p.name
}

// Parameters returns the values recorded under the given parameter name, in
// insertion order. The result is nil when the parameter was never supplied.
func (p *Property) Parameters(name string) []string {
	return p.params[name]
}

// Values returns the ordered raw value segments.
func (p *Property) Values() []string {
	return p.values
}

// Bytes returns the opaque byte payload, or nil.
func (p *Property) Bytes() []byte {
	return p.bytes
}

// Clear resets the property for reuse between tokenizer emissions.
func (p *Property) Clear() {
	p.name = ""
	p.params = make(map[string][]string)
	p.values = nil
	p.bytes = nil
}
