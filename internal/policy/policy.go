// Package policy is the authorization decision layer. Every mutating
// endpoint consults a pure function mapping (actor, action, resource) to an
// allow/deny decision before touching storage. Rules are evaluated in order;
// the first matching deny wins, and every deny carries a machine-readable
// reason that picks the HTTP status.
package policy

import (
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"
)

type Reason string

const (
	ReasonNotOwner             Reason = "not_owner"
	ReasonRoleNotPermitted     Reason = "role_not_permitted"
	ReasonJobStillActive       Reason = "job_still_active"
	ReasonJobInactive          Reason = "job_inactive"
	ReasonDuplicateApplication Reason = "duplicate_application"
	ReasonJobImmutable         Reason = "job_immutable"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(r Reason) Decision {
	return Decision{Reason: r}
}

// reasonStatus maps deny reasons to HTTP statuses: role/ownership and the
// active-job deletion guard are forbidden, state conflicts on the target
// resource are bad requests, duplicate submissions are conflicts.
var reasonStatus = map[Reason]int{
	ReasonNotOwner:             http.StatusForbidden,
	ReasonRoleNotPermitted:     http.StatusForbidden,
	ReasonJobStillActive:       http.StatusForbidden,
	ReasonJobInactive:          http.StatusBadRequest,
	ReasonDuplicateApplication: http.StatusConflict,
	ReasonJobImmutable:         http.StatusBadRequest,
}

var reasonMessage = map[Reason]string{
	ReasonNotOwner:             "You are not authorized to perform this action",
	ReasonRoleNotPermitted:     "Your role does not permit this action",
	ReasonJobStillActive:       "Active jobs cannot be deleted",
	ReasonJobInactive:          "Cannot apply to inactive jobs",
	ReasonDuplicateApplication: "You have already applied to this job",
	ReasonJobImmutable:         "Cannot change the job of an existing application",
}

// Err converts a deny decision into the structured error surfaced to the
// transport layer. Returns nil for allow decisions.
func (d Decision) Err() *apperror.AppError {
	if d.Allowed {
		return nil
	}
	return apperror.New(reasonStatus[d.Reason], reasonMessage[d.Reason], nil)
}

// CanAccessUser covers get/patch/delete of a User record: owner only.
func CanAccessUser(actor *domain.User, targetID string) Decision {
	if actor == nil || actor.ID != targetID {
		return deny(ReasonNotOwner)
	}
	return allow()
}

// CanAccessOwned covers profile-like resources keyed by a user id.
func CanAccessOwned(actor *domain.User, ownerID string) Decision {
	if actor == nil || actor.ID != ownerID {
		return deny(ReasonNotOwner)
	}
	return allow()
}

func CanCreateJob(actor *domain.User) Decision {
	if actor == nil || actor.Role != domain.RoleEmployer {
		return deny(ReasonRoleNotPermitted)
	}
	return allow()
}

func CanUpdateJob(actor *domain.User, job *domain.Job) Decision {
	if actor == nil || actor.Role != domain.RoleEmployer {
		return deny(ReasonRoleNotPermitted)
	}
	if job.EmployerID != actor.ID {
		return deny(ReasonNotOwner)
	}
	return allow()
}

func CanDeleteJob(actor *domain.User, job *domain.Job) Decision {
	if actor == nil || actor.Role != domain.RoleEmployer {
		return deny(ReasonRoleNotPermitted)
	}
	if job.EmployerID != actor.ID {
		return deny(ReasonNotOwner)
	}
	if job.IsActive {
		return deny(ReasonJobStillActive)
	}
	return allow()
}

// CanApply gates application creation: candidates only, the job must still
// be active, and the (job, candidate) pair must be unique. alreadyApplied is
// a pre-check; the storage layer's unique constraint is authoritative.
func CanApply(actor *domain.User, job *domain.Job, alreadyApplied bool) Decision {
	if actor == nil || actor.Role != domain.RoleCandidate {
		return deny(ReasonRoleNotPermitted)
	}
	if !job.IsActive {
		return deny(ReasonJobInactive)
	}
	if alreadyApplied {
		return deny(ReasonDuplicateApplication)
	}
	return allow()
}

// CanUpdateApplication gates updates: candidates only, owner only, and the
// job reference is immutable after creation. The role conjunct matters for
// owners who have since switched to an employer account; their surviving
// applications become read-only.
func CanUpdateApplication(actor *domain.User, app *domain.Application, jobChanged bool) Decision {
	if actor == nil || actor.Role != domain.RoleCandidate {
		return deny(ReasonRoleNotPermitted)
	}
	if app.CandidateID != actor.ID {
		return deny(ReasonNotOwner)
	}
	if jobChanged {
		return deny(ReasonJobImmutable)
	}
	return allow()
}

func CanDeleteApplication(actor *domain.User, app *domain.Application) Decision {
	if actor == nil || app.CandidateID != actor.ID {
		return deny(ReasonNotOwner)
	}
	return allow()
}

// CanManageCompanyProfile gates the employer-keyed profile upsert.
func CanManageCompanyProfile(actor *domain.User) Decision {
	if actor == nil || actor.Role != domain.RoleEmployer {
		return deny(ReasonRoleNotPermitted)
	}
	return allow()
}

// CanUploadResume gates resume uploads to candidate accounts.
func CanUploadResume(actor *domain.User) Decision {
	if actor == nil || actor.Role != domain.RoleCandidate {
		return deny(ReasonRoleNotPermitted)
	}
	return allow()
}
