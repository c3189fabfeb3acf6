package get_delivery_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/schedule"
)

// UseCase use case получения вариантов дат доставки для витрины.
// Теги корзины здесь не участвуют: календарь строится по базовым настройкам,
// а персональная политика корзины вычисляется отдельным запросом.
type UseCase struct {
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения вариантов доставки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDeliveryOptions: shop=%s", req.Shop)

	if req.Shop == "" {
		uc.logger.Warn("GetDeliveryOptions: missing shop")
		return nil, fmt.Errorf("%w: shop is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	settings, err := uc.settingsRepo.GetOrDefault(ctx, req.Shop)
	if err != nil {
		uc.logger.Error("GetDeliveryOptions: failed to get settings for shop=%s: %v", req.Shop, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
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
			uc.logger.Error("GetDeliveryOptions: configuration fault for shop=%s: %v", req.Shop, err)
			return nil, fmt.Errorf("%w: %v", ErrConfigFault, err)
		}
		uc.logger.Error("GetDeliveryOptions: window computation failed for shop=%s: %v", req.Shop, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	cutoff := settings.CutoffTime
	if !schedule.IsValidCutoff(cutoff) {
		cutoff = ""
	}

	uc.logger.Info("GetDeliveryOptions: shop=%s window=[%s, %s]", req.Shop, window.MinYMD(), window.MaxYMD())

	return &Response{
		MinDate:       window.MinYMD(),
		MaxDate:       window.MaxYMD(),
		DisabledDates: schedule.DisabledDates(window, holidays, blackout),
		TimeSlots:     settings.TimeSlots,
		CutoffTime:    cutoff,
		LeadTimeDays:  settings.LeadTimeDays,
		RangeDays:     settings.RangeDays,
		NoticeText:    settings.NoticeText,
	}, nil
}
