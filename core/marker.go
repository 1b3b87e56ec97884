package core

import (
	"fmt"
	"strings"
)

// Marker is an antigen label carried by cancer cells and armed T-cells
type Marker uint8

const (
	MarkerNone Marker = iota // Unarmed sentinel, never matches
	MarkerCD19
	MarkerCD30
	MarkerCD3
	MarkerCD4
	MarkerCount
)

// MarkerOrder is the cycling order used by CycleMarker and spawn-marker selection
var MarkerOrder = [MarkerCount]Marker{MarkerNone, MarkerCD19, MarkerCD30, MarkerCD3, MarkerCD4}

var markerNames = [MarkerCount]string{"NONE", "CD19", "CD30", "CD3", "CD4"}

// String returns the marker label
func (m Marker) String() string {
	if m >= MarkerCount {
		return fmt.Sprintf("Marker(%d)", uint8(m))
	}
	return markerNames[m]
}

// Armed reports whether the marker is a real antigen
func (m Marker) Armed() bool {
	return m != MarkerNone && m < MarkerCount
}

// Next returns the marker following m in MarkerOrder, wrapping around
func (m Marker) Next() Marker {
	for i, v := range MarkerOrder {
		if v == m {
			return MarkerOrder[(i+1)%len(MarkerOrder)]
		}
	}
	return MarkerNone
}

// ArmedMarkers returns all markers except MarkerNone in cycle order
func ArmedMarkers() []Marker {
	result := make([]Marker, 0, MarkerCount-1)
	for _, m := range MarkerOrder {
		if m.Armed() {
			result = append(result, m)
		}
	}
	return result
}

// ParseMarker resolves a case-insensitive marker label
func ParseMarker(s string) (Marker, error) {
	for i, name := range markerNames {
		if strings.EqualFold(s, name) {
			return Marker(i), nil
		}
	}
	return MarkerNone, fmt.Errorf("unknown marker %q", s)
}

// MarshalText encodes the marker as its label
func (m Marker) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a marker label
func (m *Marker) UnmarshalText(text []byte) error {
	parsed, err := ParseMarker(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
