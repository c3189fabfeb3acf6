package validate_selection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/schedule"
)

// UseCase use case проверки выбранной даты и времени доставки перед
// оформлением заказа. Проверка выполняется по той же действующей политике,
// что и выдача календаря: базовые настройки + правила тегов корзины.
type UseCase struct {
	settingsRepo SettingsRepository
	tagsService  TagsService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	tagsService TagsService,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		tagsService:  tagsService,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку выбора покупателя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateSelection: shop=%s, date=%q, time=%q, products=%d",
		req.Shop, req.DeliveryDate, req.DeliveryTime, len(req.ProductIDs))

	if req.Shop == "" {
		uc.logger.Warn("ValidateSelection: missing shop")
		return nil, fmt.Errorf("%w: shop is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	base, err := uc.settingsRepo.GetOrDefault(ctx, req.Shop)
	if err != nil {
		uc.logger.Error("ValidateSelection: failed to get settings for shop=%s: %v", req.Shop, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	cartTags := uc.tagsService.CartProductTags(ctx, req.Shop, req.ProductIDs)
	effective := schedule.ResolvePolicy(*base, cartTags)

	// Отключённая политика означает "для этой корзины дата не выбирается":
	// заказ без даты корректен, проверять нечего
	if effective.Policy.Disabled {
		uc.logger.Info("ValidateSelection: shop=%s policy disabled (%s), accepting", req.Shop, effective.Policy.Reason)
		return accept(), nil
	}

	settings := effective.Settings
	date := strings.TrimSpace(req.DeliveryDate)
	slot := strings.TrimSpace(req.DeliveryTime)

	if settings.Show.Date {
		if date == "" {
			if settings.Required.Date {
				uc.logger.Info("ValidateSelection: shop=%s rejected: date required", req.Shop)
				return reject(ReasonDateRequired, "delivery date is required"), nil
			}
		} else {
			resp, err := uc.validateDate(now, settings, date)
			if err != nil {
				return nil, err
			}
			if resp != nil {
				uc.logger.Info("ValidateSelection: shop=%s rejected date=%s: %s", req.Shop, date, resp.Reason)
				return resp, nil
			}
		}
	}

	if settings.Show.Time {
		if slot == "" {
			if settings.Required.Time {
				uc.logger.Info("ValidateSelection: shop=%s rejected: time required", req.Shop)
				return reject(ReasonTimeRequired, "delivery time is required"), nil
			}
		} else if !containsSlot(settings.TimeSlots, slot) {
			// Пустой список слотов означает, что допустимых значений нет:
			// непустое время в этом случае тоже отклоняется
			uc.logger.Info("ValidateSelection: shop=%s rejected slot=%q", req.Shop, slot)
			return reject(ReasonInvalidTimeSlot, fmt.Sprintf("time slot %q is not offered", slot)), nil
		}
	}

	uc.logger.Info("ValidateSelection: shop=%s accepted", req.Shop)
	return accept(), nil
}

// validateDate проверяет конкретную дату по действующим настройкам.
// Возвращает (nil, nil) когда дата проходит все проверки.
func (uc *UseCase) validateDate(now time.Time, settings domain.ShopDeliverySettings, date string) (*Response, error) {
	parsed, ok := schedule.ParseYMD(date)
	if !ok {
		return reject(ReasonInvalidDateFormat, "delivery date must be YYYY-MM-DD"), nil
	}

	holidays := schedule.BuildHolidaySet(settings.Holidays)
	blackout := schedule.BuildBlackoutSet(settings.BlackoutDates)

	window, err := schedule.ComputeWindow(now, schedule.WindowInput{
		LeadTimeDays: settings.LeadTimeDays,
		RangeDays:    settings.RangeDays,
		CutoffTime:   settings.CutoffTime,
		Holidays:     holidays,
		Blackout:     blackout,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrNoBusinessDay) {
			uc.logger.Error("ValidateSelection: configuration fault for shop=%s: %v", settings.Shop, err)
			return nil, fmt.Errorf("%w: %v", ErrConfigFault, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !window.Contains(parsed) {
		resp := reject(ReasonOutOfRange,
			fmt.Sprintf("delivery date must be between %s and %s", window.MinYMD(), window.MaxYMD()))
		resp.MinDate = window.MinYMD()
		resp.MaxDate = window.MaxYMD()
		return resp, nil
	}

	// Выходные двигают окно через подсчёт рабочих дней, но сами по себе
	// дату не запрещают; запрещает только blackout
	if blackout.Contains(parsed) {
		return reject(ReasonDisabledDate, fmt.Sprintf("delivery on %s is not available", date)), nil
	}

	return nil, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if strings.TrimSpace(s) == slot {
			return true
		}
	}
	return false
}
