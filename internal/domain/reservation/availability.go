package reservation

import "bluehaven/internal/domain/calendar"

// ExpandBlockedDates collects every night held by a reservation the policy
// counts as occupying, check-in inclusive and check-out exclusive.
func ExpandBlockedDates(reservations []*Reservation, policy OccupancyPolicy) calendar.Set {
	blocked := calendar.NewSet()
	for _, r := range reservations {
		if r == nil || !policy.Occupies(r.Status()) {
			continue
		}
		for _, d := range r.Stay().Days() {
			blocked.Add(d)
		}
	}
	return blocked
}
