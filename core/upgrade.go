package core

import (
	"fmt"
	"strings"
)

// UpgradeType identifies a collectible power-up
type UpgradeType uint8

const (
	UpgradeSpeed UpgradeType = iota
	UpgradeChainReaction
	UpgradeLifetime
	UpgradeTypeCount
)

var upgradeNames = [UpgradeTypeCount]string{"SPEED", "CHAINREACTION", "LIFETIME"}

// String returns the upgrade label
func (u UpgradeType) String() string {
	if u >= UpgradeTypeCount {
		return fmt.Sprintf("UpgradeType(%d)", uint8(u))
	}
	return upgradeNames[u]
}

// ParseUpgradeType resolves a case-insensitive upgrade label
func ParseUpgradeType(s string) (UpgradeType, error) {
	for i, name := range upgradeNames {
		if strings.EqualFold(s, name) {
			return UpgradeType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown upgrade type %q", s)
}

// MarshalText encodes the upgrade type as its label
func (u UpgradeType) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes an upgrade label
func (u *UpgradeType) UnmarshalText(text []byte) error {
	parsed, err := ParseUpgradeType(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ApplyMode selects how an upgrade reaches T-cells
type ApplyMode uint8

const (
	ApplySingle ApplyMode = iota // Dragged onto one T-cell
	ApplyGlobal                  // Tapped, affects every T-cell
)

// String returns the apply mode label
func (a ApplyMode) String() string {
	if a == ApplyGlobal {
		return "global"
	}
	return "single"
}

// MarshalText encodes the apply mode as its label
func (a ApplyMode) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ApplyModeFor returns the apply mode bound to an upgrade type
func ApplyModeFor(u UpgradeType) ApplyMode {
	if u == UpgradeSpeed {
		return ApplyGlobal
	}
	return ApplySingle
}
