package validate_selection

// Причины отклонения выбора даты/времени доставки
const (
	ReasonDateRequired      = "date_required"
	ReasonTimeRequired      = "time_required"
	ReasonInvalidDateFormat = "invalid_date_format"
	ReasonOutOfRange        = "out_of_range"
	ReasonDisabledDate      = "disabled_date"
	ReasonInvalidTimeSlot   = "invalid_time_slot"
)

// Request модель запроса на проверку выбранной даты и времени доставки
type Request struct {
	Shop         string
	DeliveryDate string  // YYYY-MM-DD; пустая строка = не выбрана
	DeliveryTime string  // Метка слота; пустая строка = не выбрано
	ProductIDs   []int64 // ID продуктов корзины для применения политики тегов
}

// Response модель результата проверки
type Response struct {
	OK      bool
	Reason  string // Код причины отклонения, пустой при OK
	Message string // Человекочитаемое описание отклонения

	// MinDate/MaxDate заполняются при Reason == ReasonOutOfRange, чтобы
	// витрина могла показать допустимый диапазон
	MinDate string
	MaxDate string
}

func accept() *Response {
	return &Response{OK: true}
}

func reject(reason, message string) *Response {
	return &Response{OK: false, Reason: reason, Message: message}
}
