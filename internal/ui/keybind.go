package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Registry maps app-chrome keys (quit, help, goto) to commands. Keys use
// Bubble Tea's KeyMsg.String() format: "q", "ctrl+c", "?". Anything not in
// the registry falls through to the presentation's event stream, where slide
// handlers and fixed navigation bindings live.
type Registry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key with a command and a help description. Overwrites any
// existing binding for the key.
func (r *Registry) Bind(k string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	r.descriptions[k] = desc
}

// Lookup returns the command for a key, or nil if not bound.
func (r *Registry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Bindings returns the registered keys as bubbles key.Binding values in
// registration order, for the help footer.
func (r *Registry) Bindings() []key.Binding {
	out := make([]key.Binding, 0, len(r.order))
	for _, k := range r.order {
		desc := r.descriptions[k]
		if desc == "" {
			desc = k
		}
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, desc),
		))
	}
	return out
}

// keyMap implements help.KeyMap: the fixed navigation bindings first, then
// whatever the registry carries.
type keyMap struct {
	reg *Registry
}

func (km keyMap) ShortHelp() []key.Binding {
	b := []key.Binding{
		key.NewBinding(key.WithKeys("right", "enter"), key.WithHelp("→/enter", "next")),
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
	}
	if km.reg != nil {
		b = append(b, km.reg.Bindings()...)
	}
	return b
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
