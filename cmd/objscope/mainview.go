package main

import tea "github.com/charmbracelet/bubbletea"

// MainViewModel wraps the main UI for use as an overlay background.
// Update returns the wrapper unchanged; it exists only for its View.
type MainViewModel struct {
	parent *Model
}

// NewMainViewModel creates a background wrapper over the app model.
func NewMainViewModel(parent *Model) *MainViewModel {
	return &MainViewModel{parent: parent}
}

// Init implements tea.Model.
func (v *MainViewModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (v *MainViewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

// View renders the main UI behind the overlay.
func (v *MainViewModel) View() string { return v.parent.renderMain() }
