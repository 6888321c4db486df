package lead

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// seedConcurrency bounds parallel inserts while seeding.
const seedConcurrency = 4

// Fixtures returns the demo pipeline loaded by `leadboard seed`.
func Fixtures() []CreateLeadRequest {
	return []CreateLeadRequest{
		{Name: "Maria Gonzalez", Status: models.StatusNew, Phone: "555-0101", Source: "Website", Notes: "Roof leak over the garage after the last storm.", Priority: models.PriorityHigh, EstimateCents: 850000},
		{Name: "Tom Becker", Status: models.StatusNew, Email: "tbecker@example.com", Source: "Referral", Notes: "Wants gutters replaced before winter.", EstimateCents: 240000},
		{Name: "Priya Raman", Status: models.StatusContacted, Email: "priya@example.com", Phone: "555-0144", Source: "Google Ads", Notes: "HVAC tune-up, asked for a Saturday slot.", Priority: models.PriorityLow, EstimateCents: 19900},
		{Name: "Jake Whitfield", Status: models.StatusContacted, Phone: "555-0177", Address: "14 Alder Ct", Source: "Yard sign", Notes: "Fence repair, about 40 ft.", EstimateCents: 310000},
		{Name: "Lena Park", Status: models.StatusQualified, Email: "lena.park@example.com", Address: "902 Harbor Rd", Source: "Website", Notes: "Full kitchen repaint, cabinets included.", Priority: models.PriorityHigh, EstimateCents: 640000},
		{Name: "Sam Ortiz", Status: models.StatusQualified, Phone: "555-0190", Source: "Referral", Notes: "Water heater is 14 years old.", Priority: models.PriorityUrgent, EstimateCents: 180000},
		{Name: "Helen Brooks", Status: models.StatusQuoted, Email: "hbrooks@example.com", Address: "3 Pine St", Source: "Facebook", Notes: "Deck staining, quote sent Tuesday.", EstimateCents: 275000},
		{Name: "Dev Patel", Status: models.StatusQuoted, Phone: "555-0122", Source: "Google Ads", Notes: "Two bathrooms, tile and fixtures.", Priority: models.PriorityHigh, EstimateCents: 1890000},
		{Name: "Grace Kim", Status: models.StatusWon, Email: "grace.kim@example.com", Source: "Referral", Notes: "Signed for a new roof, start on the 12th.", EstimateCents: 1420000},
		{Name: "Owen Hart", Status: models.StatusLost, Phone: "555-0133", Source: "Website", Notes: "Went with a cheaper bid.", Priority: models.PriorityLow, EstimateCents: 95000},
		{Name: "Nina Alvarez", Status: models.StatusNurture, Email: "nina@example.com", Source: "Home show", Notes: "Planning a basement finish next spring.", EstimateCents: 3500000},
	}
}

// Seed creates every request in parallel. The board order of seeded leads is
// not defined.
func Seed(ctx context.Context, svc Service, reqs []CreateLeadRequest) ([]*models.Lead, error) {
	created := make([]*models.Lead, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)
	for i, req := range reqs {
		g.Go(func() error {
			lead, err := svc.CreateLead(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to seed %q: %w", req.Name, err)
			}
			created[i] = lead
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return created, nil
}
