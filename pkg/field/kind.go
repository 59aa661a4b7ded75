package field

// Kind identifies the control a field represents.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindToggle   Kind = "toggle"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindColor    Kind = "color"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindText, KindTextArea, KindToggle, KindSelect, KindCheckbox, KindColor}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// InputType refines text inputs.
type InputType string

const (
	InputText     InputType = "text"
	InputNumber   InputType = "number"
	InputEmail    InputType = "email"
	InputURL      InputType = "url"
	InputPassword InputType = "password"
)

// ParseInputType returns the InputType named s. Empty selects InputText.
func ParseInputType(s string) (InputType, bool) {
	switch InputType(s) {
	case "", InputText:
		return InputText, true
	case InputNumber, InputEmail, InputURL, InputPassword:
		return InputType(s), true
	}
	return "", false
}

// State tracks where a field is in its pipeline.
type State int

const (
	StatePristine State = iota
	StateSanitized
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StatePristine:
		return "pristine"
	case StateSanitized:
		return "sanitized"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
