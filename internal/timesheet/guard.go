package timesheet

// GuardResult is the outcome of the one-entry-per-day check. When the
// candidate is rejected, Conflict names the existing entry so callers can
// tell the user which record blocks the new one.
type GuardResult struct {
	Allowed  bool
	Conflict *Entry
}

// CheckDailyUniqueness enforces the rule that an owner records at most one
// entry per company per calendar date. excludeID exempts an entry from
// conflicting with itself so that edits remain possible.
//
// This is an optimistic pre-check for fast feedback only: two concurrent
// creations can both pass it. The unique index on
// (user_id, company_id, entry_date) is the authoritative guard.
func CheckDailyUniqueness(entries []Entry, ownerID, companyID int64, date CivilDate, excludeID *int64) GuardResult {
	for i := range entries {
		e := &entries[i]
		if e.OwnerID != ownerID || e.CompanyID != companyID {
			continue
		}
		if e.Date != date {
			continue
		}
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		conflict := *e
		return GuardResult{Allowed: false, Conflict: &conflict}
	}
	return GuardResult{Allowed: true}
}
