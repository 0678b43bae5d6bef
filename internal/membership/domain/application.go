package domain

import (
	"errors"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// IsFinal reports whether an application in this status can no longer change.
func (s ApplicationStatus) IsFinal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

type Application struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Reason    string
	Status    ApplicationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplicationAction is an administrator decision on a pending application.
type ApplicationAction string

const (
	ActionApprove ApplicationAction = "APPROVE"
	ActionReject  ApplicationAction = "REJECT"
)

var ErrUnknownAction = errors.New("domain: unknown application action")

// ParseApplicationAction accepts exactly APPROVE or REJECT.
func ParseApplicationAction(s string) (ApplicationAction, error) {
	switch ApplicationAction(s) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	default:
		return "", ErrUnknownAction
	}
}

// Target returns the status an application moves to under this action.
func (a ApplicationAction) Target() ApplicationStatus {
	if a == ActionApprove {
		return ApplicationApproved
	}
	return ApplicationRejected
}
