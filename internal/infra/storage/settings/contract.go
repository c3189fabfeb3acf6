package settings

import (
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД.
// Транзакциями управляет txmanager через контекст, репозиторию достаточно
// executor-а.
type DBExecutor = dbmetrics.DBExecutor
