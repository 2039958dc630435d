package ledger

import (
	"github.com/m04kA/SMC-CourseBoxService/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов, совместим с *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
