package render

import (
	"fmt"
	"sort"
	"strings"
)

var designs = map[string]Design{
	BreathingCircles{}.Name(): BreathingCircles{},
	Ripples{}.Name():          Ripples{},
}

// Names lists the registered design names in sorted order.
func Names() []string {
	names := make([]string, 0, len(designs))
	for name := range designs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a design by name, ignoring case and surrounding space.
func Lookup(name string) (Design, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	d, ok := designs[key]
	if !ok {
		return nil, fmt.Errorf("unknown design %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}
