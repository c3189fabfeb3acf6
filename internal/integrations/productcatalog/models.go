package productcatalog

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// graphqlRequest тело запроса к Admin GraphQL API
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// graphqlResponse ответ Admin GraphQL API на запрос тегов
type graphqlResponse struct {
	Data struct {
		Nodes []struct {
			ID   string   `json:"id"`
			Tags []string `json:"tags"`
		} `json:"nodes"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
