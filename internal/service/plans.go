package service

import "github.com/ama-chapter/portal/internal/models"

// Plan describes a membership tier. Amounts are integer cents and are always
// sourced from this catalog, never from client input.
type Plan struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	AmountCents int      `json:"amountCents"`
	Frequency   string   `json:"frequency"`
	Benefits    []string `json:"benefits"`
}

var MembershipPlans = map[models.MembershipPlan]Plan{
	models.PlanChapter: {
		Label:       "Chapter Member",
		Description: "Access every chapter event, resource, and mentorship opportunity for a single annual rate.",
		AmountCents: 2900,
		Frequency:   "per year",
		Benefits: []string{
			"Unlimited workshops & on-campus events",
			"Networking with chapter leaders & alumni",
			"Leadership & resume-building opportunities",
			"Career coaching and internship alerts",
		},
	},
}
