package servicemanager

import (
	"github.com/core-tools/hsu-sjw/pkg/domain"
)

// MapActiveState converts a systemd ActiveState string into a UnitState.
func MapActiveState(activeState string) domain.UnitState {
	switch activeState {
	case "active", "reloading", "refreshing":
		return domain.UnitStateActive
	case "inactive":
		return domain.UnitStateInactive
	case "activating":
		return domain.UnitStateActivating
	case "deactivating":
		return domain.UnitStateDeactivating
	case "failed":
		return domain.UnitStateFailed
	default:
		return domain.UnitStateUnknown
	}
}

// IsEnabled reports whether a systemd UnitFileState means the unit starts at
// boot.
func IsEnabled(unitFileState string) bool {
	switch unitFileState {
	case "enabled", "enabled-runtime", "linked", "linked-runtime", "alias":
		return true
	}
	return false
}
