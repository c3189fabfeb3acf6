package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	storageSettings "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-DeliveryService/internal/schedule"
	"github.com/m04kA/SMC-DeliveryService/internal/service/settings/models"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// Service сервис для работы с настройками доставки магазинов
type Service struct {
	settingsRepo SettingsRepository
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает настройки магазина; для магазина без сохранённой строки
// возвращаются настройки по умолчанию
func (s *Service) Get(ctx context.Context, shop string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for shop=%s", shop)

	stored, err := s.settingsRepo.GetOrDefault(ctx, shop)
	if err != nil {
		s.logger.Error("Get: repository error for shop=%s: %v", shop, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(stored), nil
}

// Update применяет частичное обновление к настройкам магазина.
// Поддерживает частичное обновление - обновляются только указанные поля.
// Невалидная конфигурация отклоняется целиком, сохранённая строка не меняется.
func (s *Service) Update(ctx context.Context, shop string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for shop=%s", shop)

	// Read-modify-write: частичное обновление применяется к актуальной
	// строке внутри serializable транзакции
	var updated *domain.ShopDeliverySettings
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.settingsRepo.GetOrDefault(txCtx, shop)
		if err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		req.ApplyToSettings(current)

		if err := s.normalizeAndValidate(current); err != nil {
			return err
		}

		updated, err = s.settingsRepo.Upsert(txCtx, current)
		if err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: validation failed for shop=%s: %v", shop, err)
		} else {
			s.logger.Error("Update: failed for shop=%s: %v", shop, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated settings for shop=%s", shop)
	return models.FromDomainSettings(updated), nil
}

// Delete удаляет сохранённую строку настроек магазина; следующее чтение
// вернёт настройки по умолчанию
func (s *Service) Delete(ctx context.Context, shop string) error {
	s.logger.Info("Delete: removing settings for shop=%s", shop)

	if err := s.settingsRepo.Delete(ctx, shop); err != nil {
		if errors.Is(err, storageSettings.ErrSettingsNotFound) {
			s.logger.Warn("Delete: no stored settings for shop=%s", shop)
			return ErrSettingsNotFound
		}
		s.logger.Error("Delete: failed for shop=%s: %v", shop, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed settings for shop=%s", shop)
	return nil
}

// normalizeAndValidate валидирует настройки перед записью и приводит их к
// канонической форме. Мягкие нормализации времени запроса (clamp значений,
// отбрасывание мусорных токенов) здесь не применяются: запись строже чтения.
func (s *Service) normalizeAndValidate(st *domain.ShopDeliverySettings) error {
	if st.LeadTimeDays < domain.MinLeadTimeDays || st.LeadTimeDays > domain.MaxLeadTimeDays {
		return fmt.Errorf("%w: leadTimeDays must be between %d and %d",
			ErrInvalidInput, domain.MinLeadTimeDays, domain.MaxLeadTimeDays)
	}
	if st.RangeDays < domain.MinRangeDays || st.RangeDays > domain.MaxRangeDays {
		return fmt.Errorf("%w: rangeDays must be between %d and %d",
			ErrInvalidInput, domain.MinRangeDays, domain.MaxRangeDays)
	}
	if st.CutoffTime != "" && st.CutoffTime != domain.CutoffNone && !types.IsValidTimeString(st.CutoffTime) {
		return fmt.Errorf("%w: cutoffTime must be HH:MM, empty or %q", ErrInvalidInput, domain.CutoffNone)
	}
	if len(st.NoticeText) > domain.MaxNoticeTextLength {
		return fmt.Errorf("%w: noticeText exceeds %d characters", ErrInvalidInput, domain.MaxNoticeTextLength)
	}

	if st.CarrierPreset == "" {
		st.CarrierPreset = domain.CarrierCustom
	}
	if !domain.IsValidCarrierPreset(st.CarrierPreset) {
		return fmt.Errorf("%w: unknown carrier preset %q", ErrInvalidInput, st.CarrierPreset)
	}
	// Пресет перевозчика фиксирует список слотов; редактируемый список
	// остаётся только у custom
	if st.CarrierPreset != domain.CarrierCustom {
		st.TimeSlots = append([]string(nil), domain.CarrierPresetSlots[st.CarrierPreset]...)
	}
	st.TimeSlots = schedule.UniqueStrings(st.TimeSlots)

	if err := validateHolidays(st.Holidays); err != nil {
		return err
	}
	if err := validateDates("blackoutDates", st.BlackoutDates); err != nil {
		return err
	}

	st.DenyTags = normalizeTags(st.DenyTags)
	for _, tag := range st.DenyTags {
		if len(tag) > domain.MaxTagLength {
			return fmt.Errorf("%w: deny tag exceeds %d characters", ErrInvalidInput, domain.MaxTagLength)
		}
	}

	if err := s.validateOverrideRules(st.TagOverrides); err != nil {
		return err
	}

	st.NormalizeRequired()
	return nil
}

func (s *Service) validateOverrideRules(rules []domain.TagOverrideRule) error {
	seen := make(map[string]struct{}, len(rules))
	for i := range rules {
		rules[i].Tag = strings.TrimSpace(rules[i].Tag)
		tag := rules[i].Tag
		if tag == "" {
			return fmt.Errorf("%w: override rule #%d has a blank tag", ErrInvalidInput, i+1)
		}
		if len(tag) > domain.MaxTagLength {
			return fmt.Errorf("%w: override rule tag %q exceeds %d characters", ErrInvalidInput, tag, domain.MaxTagLength)
		}
		if _, dup := seen[tag]; dup {
			return fmt.Errorf("%w: duplicate override rule tag %q", ErrInvalidInput, tag)
		}
		seen[tag] = struct{}{}

		ov := &rules[i].Override
		if ov.LeadTimeDays != nil && (*ov.LeadTimeDays < domain.MinLeadTimeDays || *ov.LeadTimeDays > domain.MaxLeadTimeDays) {
			return fmt.Errorf("%w: override rule %q: leadTimeDays out of range", ErrInvalidInput, tag)
		}
		if ov.RangeDays != nil && (*ov.RangeDays < domain.MinRangeDays || *ov.RangeDays > domain.MaxRangeDays) {
			return fmt.Errorf("%w: override rule %q: rangeDays out of range", ErrInvalidInput, tag)
		}
		if ov.CarrierPreset != nil {
			if !domain.IsValidCarrierPreset(*ov.CarrierPreset) {
				return fmt.Errorf("%w: override rule %q: unknown carrier preset %q", ErrInvalidInput, tag, *ov.CarrierPreset)
			}
			if *ov.CarrierPreset != domain.CarrierCustom {
				ov.TimeSlots = append([]string(nil), domain.CarrierPresetSlots[*ov.CarrierPreset]...)
			}
		}
		if ov.TimeSlots != nil {
			ov.TimeSlots = schedule.UniqueStrings(ov.TimeSlots)
		}
	}
	return nil
}

// validateHolidays проверяет токены выходных: допустимы теги дней недели
// ("Sun".."Sat") и конкретные даты. Конфигурация, закрывающая все семь дней
// недели, отклоняется - по ней невозможно вычислить ни одну рабочую дату.
func validateHolidays(tokens []string) error {
	for _, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			return fmt.Errorf("%w: holidays contain a blank token", ErrInvalidInput)
		}
		if isWeekdayToken(tok) {
			continue
		}
		// ParseYMD, а не проверка формата: "2025-13-40" обязан быть отклонён
		if _, ok := schedule.ParseYMD(tok); ok {
			continue
		}
		return fmt.Errorf("%w: holiday token %q is neither a weekday nor a date", ErrInvalidInput, tok)
	}
	if schedule.BuildHolidaySet(tokens).AllWeekdaysBlocked() {
		return fmt.Errorf("%w: holidays block all seven weekdays", ErrInvalidInput)
	}
	return nil
}

func validateDates(field string, tokens []string) error {
	for _, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if _, ok := schedule.ParseYMD(tok); !ok {
			return fmt.Errorf("%w: %s token %q is not a YYYY-MM-DD date", ErrInvalidInput, field, tok)
		}
	}
	return nil
}

func isWeekdayToken(s string) bool {
	for _, key := range domain.WeekdayKeys {
		if s == key {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
