package component

import "strings"

// DefaultEndpoint is where rendered bindings post their events.
const DefaultEndpoint = "/api/v1/components"

// Scope identifies a mounted instance so that View can bind events back to it.
type Scope struct {
	Instance string
	Endpoint string
}

// RootID is the DOM id of the element wrapping the instance markup.
func (s Scope) RootID() string { return "gs-" + s.Instance }

// ID is a DOM id for a target inside the instance.
func (s Scope) ID(target string) string { return s.RootID() + "-" + target }

// OnInput binds the input event of a text control to target.
func (s Scope) OnInput(target string) []string {
	return []string{"oninput", s.call("input", "this", target)}
}

// OnChange binds the change event of a select to target.
func (s Scope) OnChange(target string) []string {
	return []string{"onchange", s.call("select", "this", target)}
}

// OnClick binds clicks on an element to target.
func (s Scope) OnClick(target string) []string {
	return []string{"onclick", s.call("click", "event", target)}
}

func (s Scope) endpoint() string {
	if s.Endpoint == "" {
		return DefaultEndpoint
	}
	return s.Endpoint
}

func (s Scope) call(fn, arg, target string) string {
	return "gostyles." + fn + "(" + arg + ",'" + s.endpoint() + "','" + s.Instance + "','" + target + "')"
}

// Attrs concatenates attribute pairs for element builder calls.
func Attrs(groups ...[]string) []string {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]string, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Pair returns name/value as attributes, or nothing when value is empty.
func Pair(name, value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return []string{name, value}
}
