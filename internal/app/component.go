// Package app declares the page components of the lab and the surfaces each one
// needs. A component whose surfaces are not all available is skipped entirely.
package app

import (
	"sort"
)

// Surface names an external element a component draws on or reads from
type Surface string

const (
	SurfaceSimForm     Surface = "sim-form"
	SurfaceSimChart    Surface = "sim-chart"
	SurfaceAssetsTable Surface = "assets-table"
	SurfaceMarketChart Surface = "market-chart"
	SurfaceChatForm    Surface = "chat-form"
	SurfaceChatInput   Surface = "chat-input"
	SurfaceChatLog     Surface = "chat-log"
	SurfaceFAQTags     Surface = "faq-tags"
)

// ComponentName identifies a page component
type ComponentName string

const (
	ComponentSimulation ComponentName = "simulation"
	ComponentMarkets    ComponentName = "markets"
	ComponentChatbot    ComponentName = "chatbot"
)

// Component is a page feature and the surfaces it requires
type Component struct {
	Name     ComponentName
	Requires []Surface
}

// Components lists the lab components in start-up order.
var Components = []Component{
	{Name: ComponentSimulation, Requires: []Surface{SurfaceSimForm, SurfaceSimChart}},
	{Name: ComponentMarkets, Requires: []Surface{SurfaceAssetsTable, SurfaceMarketChart}},
	{Name: ComponentChatbot, Requires: []Surface{SurfaceChatForm, SurfaceChatInput, SurfaceChatLog, SurfaceFAQTags}},
}

// AllSurfaces returns every surface known to the components, sorted
func AllSurfaces() []string {
	seen := map[Surface]bool{}
	var out []string
	for _, c := range Components {
		for _, s := range c.Requires {
			if !seen[s] {
				seen[s] = true
				out = append(out, string(s))
			}
		}
	}
	sort.Strings(out)
	return out
}

// Missing returns the required surfaces absent from available
func (c Component) Missing(available map[Surface]bool) []Surface {
	var missing []Surface
	for _, s := range c.Requires {
		if !available[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// Mounted is the outcome of the start-up capability check
type Mounted struct {
	enabled map[ComponentName]bool
	Skipped map[ComponentName][]Surface
}

// Mount checks every component against the available surfaces.
func Mount(components []Component, surfaces []string) Mounted {
	available := make(map[Surface]bool, len(surfaces))
	for _, s := range surfaces {
		available[Surface(s)] = true
	}
	m := Mounted{
		enabled: map[ComponentName]bool{},
		Skipped: map[ComponentName][]Surface{},
	}
	for _, c := range components {
		if missing := c.Missing(available); len(missing) > 0 {
			m.Skipped[c.Name] = missing
			continue
		}
		m.enabled[c.Name] = true
	}
	return m
}

// Enabled reports whether a component passed the capability check
func (m Mounted) Enabled(name ComponentName) bool {
	return m.enabled[name]
}

// EnabledNames returns the mounted component names in start-up order
func (m Mounted) EnabledNames() []ComponentName {
	var names []ComponentName
	for _, c := range Components {
		if m.enabled[c.Name] {
			names = append(names, c.Name)
		}
	}
	return names
}
