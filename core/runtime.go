// Package core owns the application model: the tab list, input dispatch
// precedence, key registry and the shared runtime handed to every tab.
package core

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nor-os/nimbus-console/access"
	"github.com/nor-os/nimbus-console/dialogs"
	"github.com/nor-os/nimbus-console/internal/config"
	"github.com/nor-os/nimbus-console/internal/database/repository"
	"github.com/nor-os/nimbus-console/nav"
)

// Runtime is the explicitly constructed context object shared by the tab
// tree: configuration, datastore repositories, the dialog manager/host pair,
// the breadcrumb builder and the capability set. Built once at application
// start; no package-level state.
type Runtime struct {
	Cfg config.Config
	Log zerolog.Logger
	DB  *sql.DB

	Compartments  *repository.CompartmentRepo
	Approvals     *repository.ApprovalRepo
	Audit         *repository.AuditRepo
	Notifications *repository.NotificationRepo
	Groups        *repository.GroupRepo

	Dialogs *dialogs.Manager
	Host    *dialogs.Host
	Crumbs  *nav.Builder
	Caps    access.Set
}

func NewRuntime(cfg config.Config, log zerolog.Logger, db *sql.DB) *Runtime {
	mgr := dialogs.NewManager()
	mgr.SetLogger(log)
	return &Runtime{
		Cfg:           cfg,
		Log:           log,
		DB:            db,
		Compartments:  repository.NewCompartmentRepo(db),
		Approvals:     repository.NewApprovalRepo(db),
		Audit:         repository.NewAuditRepo(db),
		Notifications: repository.NewNotificationRepo(db),
		Groups:        repository.NewGroupRepo(db),
		Dialogs:       mgr,
		Host:          dialogs.NewHost(mgr),
		Crumbs:        nav.NewBuilder(),
		Caps:          access.NewSet(cfg.UI.Capabilities...),
	}
}

// AuditEvent records a console action in the audit log. Failures are logged
// and swallowed; auditing never breaks the interaction that caused it.
func (r *Runtime) AuditEvent(action, resource, detail string) {
	e := repository.AuditEvent{
		ID:       uuid.NewString(),
		Actor:    r.Cfg.UI.Actor,
		Action:   action,
		Resource: resource,
		Detail:   detail,
	}
	if err := r.Audit.Insert(context.Background(), e); err != nil {
		r.Log.Error().Err(err).Str("action", action).Msg("audit insert")
	}
}
