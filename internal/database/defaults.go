package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/nor-os/nimbus-console/internal/database/repository"
)

// stableID derives a deterministic id so seeding stays idempotent.
func stableID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

// SeedDefaults populates a fresh datastore with demo governance data.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	groupRepo := repository.NewGroupRepo(db)
	existing, err := groupRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	groups := []repository.Group{
		{Name: "platform-admins", Description: "Full landing-zone control"},
		{Name: "network-operators", Description: "VPC and IPAM changes"},
		{Name: "auditors", Description: "Read-only audit access"},
		{Name: "workflow-authors", Description: "Author and publish workflows"},
	}
	for _, g := range groups {
		g.ID = stableID("group", g.Name)
		if err := groupRepo.Upsert(ctx, g); err != nil {
			return err
		}
	}

	compRepo := repository.NewCompartmentRepo(db)
	compartments := []repository.Compartment{
		{Name: "Shared Services", X: 40, Y: 40, Width: 360, Height: 240, Metadata: `{"tier":"core"}`},
		{Name: "Production", X: 440, Y: 40, Width: 420, Height: 300, Metadata: `{"tier":"prod"}`},
		{Name: "Sandbox", X: 40, Y: 320, Width: 300, Height: 200, Metadata: `{"tier":"dev"}`},
	}
	for _, c := range compartments {
		c.ID = stableID("compartment", c.Name)
		if err := compRepo.Upsert(ctx, c); err != nil {
			return err
		}
	}

	apprRepo := repository.NewApprovalRepo(db)
	approvals := []repository.Approval{
		{Title: "Peer prod VPC to shared services", Requester: "dana", Resource: "net/vpc-peering-17", State: repository.ApprovalPending},
		{Title: "Widen sandbox CIDR to /20", Requester: "marco", Resource: "net/cidr-sandbox", State: repository.ApprovalPending},
		{Title: "Publish workflow billing-export v4", Requester: "ines", Resource: "wf/billing-export", State: repository.ApprovalPending},
	}
	for _, a := range approvals {
		a.ID = stableID("approval", a.Title)
		if err := apprRepo.Insert(ctx, a); err != nil {
			return err
		}
	}

	noteRepo := repository.NewNotificationRepo(db)
	notes := []repository.Notification{
		{Subject: "Drift detected in Production", Body: "Compartment geometry differs from the last approved topology."},
		{Subject: "Approval queue growing", Body: "3 requests are waiting for more than 24h."},
	}
	for _, n := range notes {
		n.ID = stableID("notification", n.Subject)
		if err := noteRepo.Insert(ctx, n); err != nil {
			return err
		}
	}
	return nil
}
