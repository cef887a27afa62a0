package promotion

import "github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
