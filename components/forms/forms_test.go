package forms

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"

	"gostyles/styles"
)

func render(c element.Component) string {
	b := element.NewBuilder()
	c.Render(b)
	return b.String()
}

// TestInputClassesAndBinding verifies variant tokens, escaping and the owner binding
func TestInputClassesAndBinding(t *testing.T) {
	html := render(Input{
		ID:          "form-input-test",
		Value:       `a<b`,
		Placeholder: "test",
		Palette:     styles.Success,
		Underline:   true,
		Bind:        []string{"oninput", "handle(this)"},
	})

	if !strings.Contains(html, `class="form-input success medium underline"`) {
		t.Errorf("unexpected input classes: %s", html)
	}
	if !strings.Contains(html, `type="text"`) {
		t.Error("Input should default to type text")
	}
	if strings.Contains(html, "a<b") {
		t.Error("Input value should be escaped")
	}
	if !strings.Contains(html, `oninput="handle(this)"`) {
		t.Error("Input should carry its binding")
	}
	if strings.Contains(html, "disabled") {
		t.Error("Input should not be disabled by default")
	}
}

// TestSelectOptions verifies option flags and the multiple attribute
func TestSelectOptions(t *testing.T) {
	html := render(Select{
		Multiple: true,
		Options: []SelectOption{
			{Value: "", Label: "Select library", Disabled: true},
			{Value: "yew", Label: "Yew", Selected: true},
		},
	})

	if !strings.Contains(html, `multiple="multiple"`) {
		t.Error("Select should render the multiple flag")
	}
	if !strings.Contains(html, `disabled="disabled"`) {
		t.Error("placeholder option should be disabled")
	}
	if !strings.Contains(html, `selected="selected"`) {
		t.Error("selected option should be marked")
	}
	if !strings.Contains(html, "Yew") {
		t.Error("Select should render option labels")
	}
}

// TestGroupOrientation verifies the default orientation and child rendering
func TestGroupOrientation(t *testing.T) {
	html := render(Group{Children: []element.Component{Label{Text: "standard input"}, Output{Text: "Value: "}}})

	if !strings.Contains(html, `class="form-group vertical"`) {
		t.Errorf("unexpected group classes: %s", html)
	}
	if !strings.Contains(html, "standard input") || !strings.Contains(html, "Value: ") {
		t.Error("Group should render its children")
	}
}

// TestTextAreaRows verifies rows and escaped content
func TestTextAreaRows(t *testing.T) {
	html := render(TextArea{Rows: 4, Value: "x & y"})

	if !strings.Contains(html, `rows="4"`) {
		t.Error("TextArea should render rows")
	}
	if strings.Contains(html, "x & y") {
		t.Error("TextArea content should be escaped")
	}
}

// TestFormValidation verifies variant checks on each control
func TestFormValidation(t *testing.T) {
	if err := (Input{Type: "checkbox"}).Validate(); err == nil {
		t.Error("unsupported input type should be rejected")
	}
	if err := (Input{Palette: styles.Warning, Size: styles.Big}).Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
	if err := (Select{Size: "jumbo"}).Validate(); err == nil {
		t.Error("unknown select size should be rejected")
	}
	if err := (TextArea{Rows: -1}).Validate(); err == nil {
		t.Error("negative rows should be rejected")
	}
	g := Group{Orientation: Horizontal, Children: []element.Component{Input{Palette: "teal"}}}
	if err := g.Validate(); err == nil {
		t.Error("group should validate its children")
	}
}
