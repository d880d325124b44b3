// Package tier maps subscription plans and content labels onto a single
// ordinal scale so access checks are a total comparison.
package tier

const (
	Free     = 0
	Basic    = 1
	Medium   = 2
	Hardcore = 3
)

// PlanLabel returns the display name for a stored plan id.
func PlanLabel(planID int) string {
	switch planID {
	case 1:
		return "Basic Monthly"
	case 2:
		return "Basic One-time"
	case 3:
		return "Medium Monthly"
	case 4:
		return "Medium One-time"
	case 5:
		return "Hardcore Monthly"
	case 6:
		return "Hardcore One-time"
	default:
		return "Free"
	}
}

// PlanOrdinal maps a stored plan id to the viewer's access level.
func PlanOrdinal(planID int) int {
	switch planID {
	case 1, 2:
		return Basic
	case 3, 4:
		return Medium
	case 5, 6:
		return Hardcore
	default:
		return Free
	}
}

// ContentOrdinal maps a collection/post tier label to its access level.
// Unknown labels resolve to Basic so malformed rows stay reachable rather
// than silently locked.
func ContentOrdinal(label string) int {
	switch label {
	case "BASIC":
		return Basic
	case "MEDIUM":
		return Medium
	case "HARDCORE":
		return Hardcore
	default:
		return Basic
	}
}

// CanAccess is the whole access policy: viewer ordinal at or above content
// ordinal.
func CanAccess(viewerOrdinal, contentOrdinal int) bool {
	return viewerOrdinal >= contentOrdinal
}

// AnonymousOrdinal is what unauthenticated viewers get: Basic-only content.
func AnonymousOrdinal() int {
	return Basic
}
