package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, email, role, token, invited_by, expires_at, used, used_by, created_at, updated_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, email, role, token, invited_by, expires_at, used, used_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, NULL, ?, ?)`,
		inv.ID, inv.Email, string(inv.Role), inv.Token, inv.InvitedBy, inv.ExpiresAt.UTC(), now, now)
	return mapConstraint(err)
}

func (r *invitesRepo) GetUnusedInviteByToken(ctx context.Context, token string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE token = ? AND used = 0`, token)
	return scanInvite(row)
}

func (r *invitesRepo) GetUnusedInviteByEmail(ctx context.Context, email string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE email = ? AND used = 0`, email)
	return scanInvite(row)
}

// ConsumeInvite is the single-use guarantee: the WHERE clause only matches
// a still-unused, still-valid row, so concurrent consumers race on the row
// transition rather than on a read-then-write, and an invite that expires
// after being validated but before being consumed cannot be burned.
func (r *invitesRepo) ConsumeInvite(ctx context.Context, token string, usedBy string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET used = 1, used_by = ?, updated_at = ? WHERE token = ? AND used = 0 AND expires_at > ?`,
		mapStringNull(usedBy), now, token, now)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, email string) error {
	var err error
	if email == "" {
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM invites WHERE used = 0 AND expires_at < ?`, time.Now().UTC())
	} else {
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM invites WHERE used = 0 AND expires_at < ? AND email = ?`,
			time.Now().UTC(), email)
	}
	return err
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv    domain.Invite
		role   string
		usedBy sql.NullString
	)
	err := row.Scan(
		&inv.ID,
		&inv.Email,
		&role,
		&inv.Token,
		&inv.InvitedBy,
		&inv.ExpiresAt,
		&inv.Used,
		&usedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}
