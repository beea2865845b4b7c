package constants

import "time"

// ScanStatus is the canonical status for rows in scan_results.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusSuccess ScanStatus = "SUCCESS" // fetch + extract completed, payload stored
	ScanStatusFailed  ScanStatus = "FAILED"  // terminal failure, error message stored
)

// ReviewStatus tracks the user's verdict on a scan's extracted data.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED" // promoted into master data
	ReviewRejected ReviewStatus = "REJECTED"
)

// ProposalStatus tracks the lifecycle of a discovery proposal.
type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "PENDING"
	ProposalPromoted  ProposalStatus = "PROMOTED"
	ProposalDismissed ProposalStatus = "DISMISSED"
)

// Schedule is a target's scan cadence.
type Schedule string

const (
	ScheduleDaily   Schedule = "daily"
	ScheduleWeekly  Schedule = "weekly"
	ScheduleMonthly Schedule = "monthly"
)

var Schedules = []string{
	string(ScheduleDaily),
	string(ScheduleWeekly),
	string(ScheduleMonthly),
}

// Interval returns the minimum elapsed time before a target with this
// schedule is due again. Unknown schedules fall back to monthly.
func (s Schedule) Interval() time.Duration {
	switch s {
	case ScheduleDaily:
		return 24 * time.Hour
	case ScheduleWeekly:
		return 168 * time.Hour
	default:
		return 720 * time.Hour
	}
}
