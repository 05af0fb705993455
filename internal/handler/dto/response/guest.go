package response

import (
	"bluehaven/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GuestStatsResponse struct {
	TotalBookings    int   `json:"totalBookings"`
	UpcomingBookings int   `json:"upcomingBookings"`
	PastBookings     int   `json:"pastBookings"`
	TotalSpentCents  int64 `json:"totalSpentCents"`
	ReviewsGiven     int   `json:"reviewsGiven"`
}

type DashboardResponse struct {
	Email    string             `json:"email"`
	Stats    GuestStatsResponse `json:"stats"`
	Upcoming []*BookingResponse `json:"upcoming"`
	Past     []*BookingResponse `json:"past"`
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	out := &DashboardResponse{
		Email:    v.Email,
		Upcoming: FromReservationViews(v.Upcoming),
		Past:     FromReservationViews(v.Past),
	}
	_ = copier.Copy(&out.Stats, &v.Stats)
	return out
}

type UpcomingRemindersResponse struct {
	CheckIns  []*BookingResponse `json:"checkIns"`
	CheckOuts []*BookingResponse `json:"checkOuts"`
}

func FromUpcomingReminders(u *queries.UpcomingReminders) *UpcomingRemindersResponse {
	return &UpcomingRemindersResponse{
		CheckIns:  FromReservationViews(u.CheckIns),
		CheckOuts: FromReservationViews(u.CheckOuts),
	}
}
