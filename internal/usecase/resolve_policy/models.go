package resolve_policy

import (
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Request модель запроса на вычисление действующей политики доставки
type Request struct {
	Shop       string  // Домен магазина (myshop.myshopify.com)
	ProductIDs []int64 // ID продуктов корзины; пустой список = политика без тегов
}

// Response модель ответа с действующей политикой
type Response struct {
	Effective domain.EffectiveSettings // Настройки после применения правил тегов

	// Window и DisabledDates заполняются только при активной политике
	// (Effective.Policy.Disabled == false)
	Window        domain.AvailabilityWindow
	DisabledDates []string
}
