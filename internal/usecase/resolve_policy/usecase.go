package resolve_policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/schedule"
)

// UseCase use case вычисления действующей политики доставки для корзины
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

// Execute выполняет use case вычисления политики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolvePolicy: shop=%s, products=%d", req.Shop, len(req.ProductIDs))

	// 1. Валидация входных данных
	if req.Shop == "" {
		uc.logger.Warn("ResolvePolicy: missing shop")
		return nil, fmt.Errorf("%w: shop is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки магазина (дефолтные для неизвестного магазина)
	base, err := uc.settingsRepo.GetOrDefault(ctx, req.Shop)
	if err != nil {
		uc.logger.Error("ResolvePolicy: failed to get settings for shop=%s: %v", req.Shop, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Собираем теги продуктов корзины (fail-open: при сбое каталога
	// сервис тегов возвращает пустой набор)
	cartTags := uc.tagsService.CartProductTags(ctx, req.Shop, req.ProductIDs)

	// 5. Применяем политику тегов: deny раньше override, первый совпавший
	// override выигрывает
	effective := schedule.ResolvePolicy(*base, cartTags)

	if effective.Policy.Disabled {
		uc.logger.Info("ResolvePolicy: shop=%s disabled by policy (%s)", req.Shop, effective.Policy.Reason)
		return &Response{Effective: effective}, nil
	}

	// 6. Вычисляем окно доступных дат по действующим настройкам
	holidays := schedule.BuildHolidaySet(effective.Settings.Holidays)
	blackout := schedule.BuildBlackoutSet(effective.Settings.BlackoutDates)

	window, err := schedule.ComputeWindow(now, schedule.WindowInput{
		LeadTimeDays: effective.Settings.LeadTimeDays,
		RangeDays:    effective.Settings.RangeDays,
		CutoffTime:   effective.Settings.CutoffTime,
		Holidays:     holidays,
		Blackout:     blackout,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrNoBusinessDay) {
			uc.logger.Error("ResolvePolicy: configuration fault for shop=%s: %v", req.Shop, err)
			return nil, fmt.Errorf("%w: %v", ErrConfigFault, err)
		}
		uc.logger.Error("ResolvePolicy: window computation failed for shop=%s: %v", req.Shop, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolvePolicy: shop=%s window=[%s, %s]", req.Shop, window.MinYMD(), window.MaxYMD())

	return &Response{
		Effective:     effective,
		Window:        window,
		DisabledDates: schedule.DisabledDates(window, holidays, blackout),
	}, nil
}
