package repository

import (
	"context"
	"time"

	"studiobooking/internal/infra"
	"studiobooking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TrustedDeviceRepository struct {
	db *pgxpool.Pool
}

func NewTrustedDeviceRepository(db *pgxpool.Pool) *TrustedDeviceRepository {
	return &TrustedDeviceRepository{db: db}
}

func (r *TrustedDeviceRepository) Save(ctx context.Context, d commands.TrustedDevice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO trusted_devices (id, phone, fingerprint_hash, device_name, trusted_at)
		VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.Phone, d.FingerprintHash, d.DeviceName, d.TrustedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save trusted device", err)
	}
	return nil
}

// FindByPhone returns all trusted devices for a phone, newest first. Callers
// compare a presented fingerprint against each hash; bcrypt hashes are salted
// so no hash-keyed lookup is possible.
func (r *TrustedDeviceRepository) FindByPhone(ctx context.Context, phone string) ([]commands.TrustedDevice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, phone, fingerprint_hash, device_name, trusted_at
		FROM trusted_devices
		WHERE phone = $1
		ORDER BY trusted_at DESC`,
		phone,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query trusted devices", err)
	}
	defer rows.Close()

	var out []commands.TrustedDevice
	for rows.Next() {
		var d commands.TrustedDevice
		if err := rows.Scan(&d.ID, &d.Phone, &d.FingerprintHash, &d.DeviceName, &d.TrustedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trusted device", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read trusted devices", err)
	}
	return out, nil
}

// DeleteExpired removes the phone's devices trusted before the cutoff. A zero
// trust TTL means devices never expire and this is never called.
func (r *TrustedDeviceRepository) DeleteExpired(ctx context.Context, phone string, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM trusted_devices WHERE phone = $1 AND trusted_at < $2`, phone, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired trusted devices", err)
	}
	return tag.RowsAffected(), nil
}
