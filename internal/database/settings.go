package database

import (
	"context"
	"database/sql"
	"errors"
)

// Setting keys.
const (
	SettingTheme     = "theme"
	SettingLastMonth = "last_month"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := withDBContextResult(d, ctx, func(ctx context.Context) (sql.NullString, error) {
		var value sql.NullString
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		return value, err
	})
	if err != nil {
		return "", false
	}
	return value.String, value.Valid
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, nullableString(value))
		return wrapErr(EntitySetting, "set", key, err)
	})
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return wrapErr(EntitySetting, "delete", key, err)
		}
		return nil
	})
}
