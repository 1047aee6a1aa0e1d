package dtos

import (
	"time"

	"github.com/google/uuid"
)

// TransitionMethod names the operation that fired a state change. The values
// end up verbatim in the audit log, so they never change once shipped.
type TransitionMethod string

const (
	TransitionSubmit               TransitionMethod = "submit"
	TransitionStartReview          TransitionMethod = "startReview"
	TransitionApprove              TransitionMethod = "approve"
	TransitionReject               TransitionMethod = "reject"
	TransitionAcknowledgeRejection TransitionMethod = "acknowledgeRejection"
	TransitionArchive              TransitionMethod = "archive"
	TransitionFinalize             TransitionMethod = "finalize"
	TransitionStartScan            TransitionMethod = "startScan"
	TransitionMarkClean            TransitionMethod = "markClean"
	TransitionMarkInfected         TransitionMethod = "markInfected"
	TransitionMarkError            TransitionMethod = "markError"
)

type TransitionDTO struct {
	ID               uuid.UUID        `json:"id"`
	FromState        string           `json:"fromState"`
	ToState          string           `json:"toState"`
	TransitionMethod TransitionMethod `json:"transitionMethod"`
	TriggeredBy      *string          `json:"triggeredBy,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}
