package client

import "jobtrack/internal/models"

// StyleKind classifies how a status is rendered.
type StyleKind int

const (
	StyleNeutral StyleKind = iota
	StyleInfo
	StyleHighlight
	StyleSuccess
	StyleDanger
)

// Style is the display treatment for a status badge. Icon is empty for
// the neutral fallback.
type Style struct {
	Kind StyleKind
	Icon string
}

// StatusStyle maps a status to its display style. Unknown values fall
// back to a neutral style with no icon.
func StatusStyle(status models.Status) Style {
	switch status {
	case models.StatusApplied:
		return Style{Kind: StyleInfo, Icon: "briefcase"}
	case models.StatusInterview:
		return Style{Kind: StyleHighlight, Icon: "calendar"}
	case models.StatusOffer:
		return Style{Kind: StyleSuccess, Icon: "check-circle"}
	case models.StatusRejected:
		return Style{Kind: StyleDanger, Icon: "x-circle"}
	default:
		return Style{Kind: StyleNeutral}
	}
}
