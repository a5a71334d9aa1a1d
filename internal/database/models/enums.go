package models

// AssignmentType selects the approval chain and default capacity share
type AssignmentType string

const (
	AssignmentTypeEmergency AssignmentType = "emergency"
	AssignmentTypeStandard  AssignmentType = "standard"
	AssignmentTypeScheduled AssignmentType = "scheduled"
)

// AssignmentStatus is the coarse lifecycle status of a request
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusApproved   AssignmentStatus = "approved"
	AssignmentStatusRejected   AssignmentStatus = "rejected"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

// ApprovalDecision is the outcome recorded on an approval record
type ApprovalDecision string

const (
	ApprovalDecisionPending  ApprovalDecision = "pending"
	ApprovalDecisionApproved ApprovalDecision = "approved"
	ApprovalDecisionRejected ApprovalDecision = "rejected"
)

// IsValid checks if the AssignmentType is valid
func (t AssignmentType) IsValid() bool {
	switch t {
	case AssignmentTypeEmergency, AssignmentTypeStandard, AssignmentTypeScheduled:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusApproved, AssignmentStatusRejected,
		AssignmentStatusCancelled, AssignmentStatusInProgress, AssignmentStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no approval can be pending in this status
func (s AssignmentStatus) IsTerminal() bool {
	return s != AssignmentStatusPending
}

// IsValid checks if the decision is a final decision an approver can submit
func (d ApprovalDecision) IsValid() bool {
	switch d {
	case ApprovalDecisionApproved, ApprovalDecisionRejected:
		return true
	}
	return false
}
