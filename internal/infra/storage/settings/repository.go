package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
)

var settingsColumns = []string{
	"shop",
	"lead_time_days",
	"range_days",
	"cutoff_time",
	"notice_text",
	"time_slots_json",
	"holidays_json",
	"blackout_json",
	"show_date",
	"show_time",
	"show_placement",
	"require_date",
	"require_time",
	"attr_date_name",
	"attr_time_name",
	"attr_placement_name",
	"carrier_preset",
	"deny_tags_json",
	"tag_overrides_json",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек доставки (одна строка на магазин)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByShop получает настройки магазина
func (r *Repository) GetByShop(ctx context.Context, shop string) (*domain.ShopDeliverySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("delivery_settings").
		Where(squirrel.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSettings(row)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - scan settings: %v", ErrScanRow, err)
	}
	return s, nil
}

// GetOrDefault returns the shop's settings, or the documented default
// configuration for shops without a stored row. Never fails for an unknown
// shop.
func (r *Repository) GetOrDefault(ctx context.Context, shop string) (*domain.ShopDeliverySettings, error) {
	s, err := r.GetByShop(ctx, shop)
	if err == ErrSettingsNotFound {
		return domain.DefaultSettings(shop), nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Upsert сохраняет настройки магазина (insert или update по shop)
func (r *Repository) Upsert(ctx context.Context, s *domain.ShopDeliverySettings) (*domain.ShopDeliverySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	timeSlots, err := encodeStringArray(s.TimeSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - time_slots: %v", ErrEncode, err)
	}
	holidays, err := encodeStringArray(s.Holidays)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - holidays: %v", ErrEncode, err)
	}
	blackout, err := encodeStringArray(s.BlackoutDates)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - blackout: %v", ErrEncode, err)
	}
	denyTags, err := encodeStringArray(s.DenyTags)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - deny_tags: %v", ErrEncode, err)
	}
	overrides, err := encodeOverrideRules(s.TagOverrides)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - tag_overrides: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("delivery_settings").
		Columns(
			"shop",
			"lead_time_days",
			"range_days",
			"cutoff_time",
			"notice_text",
			"time_slots_json",
			"holidays_json",
			"blackout_json",
			"show_date",
			"show_time",
			"show_placement",
			"require_date",
			"require_time",
			"attr_date_name",
			"attr_time_name",
			"attr_placement_name",
			"carrier_preset",
			"deny_tags_json",
			"tag_overrides_json",
		).
		Values(
			s.Shop,
			s.LeadTimeDays,
			s.RangeDays,
			s.CutoffTime,
			s.NoticeText,
			timeSlots,
			holidays,
			blackout,
			s.Show.Date,
			s.Show.Time,
			s.Show.Placement,
			s.Required.Date,
			s.Required.Time,
			s.AttrNames.Date,
			s.AttrNames.Time,
			s.AttrNames.Placement,
			s.CarrierPreset,
			denyTags,
			overrides,
		).
		Suffix(`ON CONFLICT (shop) DO UPDATE SET
			lead_time_days = EXCLUDED.lead_time_days,
			range_days = EXCLUDED.range_days,
			cutoff_time = EXCLUDED.cutoff_time,
			notice_text = EXCLUDED.notice_text,
			time_slots_json = EXCLUDED.time_slots_json,
			holidays_json = EXCLUDED.holidays_json,
			blackout_json = EXCLUDED.blackout_json,
			show_date = EXCLUDED.show_date,
			show_time = EXCLUDED.show_time,
			show_placement = EXCLUDED.show_placement,
			require_date = EXCLUDED.require_date,
			require_time = EXCLUDED.require_time,
			attr_date_name = EXCLUDED.attr_date_name,
			attr_time_name = EXCLUDED.attr_time_name,
			attr_placement_name = EXCLUDED.attr_placement_name,
			carrier_preset = EXCLUDED.carrier_preset,
			deny_tags_json = EXCLUDED.deny_tags_json,
			tag_overrides_json = EXCLUDED.tag_overrides_json,
			updated_at = now()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// Delete удаляет настройки магазина
func (r *Repository) Delete(ctx context.Context, shop string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("delivery_settings").
		Where(squirrel.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.ShopDeliverySettings, error) {
	var s domain.ShopDeliverySettings
	var timeSlots, holidays, blackout, denyTags, overrides string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.Shop,
		&s.LeadTimeDays,
		&s.RangeDays,
		&s.CutoffTime,
		&s.NoticeText,
		&timeSlots,
		&holidays,
		&blackout,
		&s.Show.Date,
		&s.Show.Time,
		&s.Show.Placement,
		&s.Required.Date,
		&s.Required.Time,
		&s.AttrNames.Date,
		&s.AttrNames.Time,
		&s.AttrNames.Placement,
		&s.CarrierPreset,
		&denyTags,
		&overrides,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.TimeSlots = safeStringArray(timeSlots)
	s.Holidays = safeStringArray(holidays)
	s.BlackoutDates = safeStringArray(blackout)
	s.DenyTags = safeStringArray(denyTags)
	s.TagOverrides = safeOverrideRules(overrides)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
