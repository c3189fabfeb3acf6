package get_delivery_options

// Request модель запроса вариантов дат доставки
type Request struct {
	Shop string // Домен магазина
}

// Response модель ответа для рендеринга календаря на витрине
type Response struct {
	MinDate       string   // Первая доступная дата, YYYY-MM-DD
	MaxDate       string   // Последняя доступная дата, YYYY-MM-DD
	DisabledDates []string // Выходные и заблокированные даты внутри окна, отсортированы
	TimeSlots     []string
	CutoffTime    string // "HH:MM" или пустая строка, когда отсечка выключена
	LeadTimeDays  int
	RangeDays     int
	NoticeText    string
}
