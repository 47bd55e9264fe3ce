package common

import (
	"time"

	"github.com/typer-app/backend/internal/entity"
)

// Clock supplies the current time to eligibility checks so tests can pin it.
type Clock func() time.Time

// CanModifyEvent allows changing an event or recording its result only after
// the match has started, and only for group admins. A super admin bypasses the
// membership requirement but not the time gate.
func CanModifyEvent(user *entity.User, member *entity.Member, event *entity.Event, now time.Time) bool {
	if !event.Finished(now) {
		return false
	}

	if user.IsSuperAdmin() {
		return true
	}

	return member != nil && member.Admin
}

// CanManageGroup allows administrative actions on a group (scheduling events,
// deleting the group) for group admins and super admins.
func CanManageGroup(user *entity.User, member *entity.Member) bool {
	if user.IsSuperAdmin() {
		return true
	}

	return member != nil && member.Admin
}

// CanCreateEvent allows scheduling a new event for group admins and super
// admins.
func CanCreateEvent(user *entity.User, member *entity.Member) bool {
	return CanManageGroup(user, member)
}

// CanPlaceBet allows predictions from group members strictly before the match
// starts. Admin status grants nothing extra here and super admins get no
// bypass, betting requires membership.
func CanPlaceBet(member *entity.Member, event *entity.Event, now time.Time) bool {
	if event.Finished(now) {
		return false
	}

	return member != nil
}

// CanSetGroupAdmin allows granting or revoking the admin flag of a member.
// Only admins of the same group and super admins qualify, and a super admin
// can never be the target.
func CanSetGroupAdmin(user *entity.User, member *entity.Member, target *entity.User) bool {
	if target.IsSuperAdmin() {
		return false
	}

	if user.IsSuperAdmin() {
		return true
	}

	return member != nil && member.Admin
}
