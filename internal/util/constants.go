package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// RequestIDKey gin.Context 中保存请求 ID 的键
const RequestIDKey = "request_id"

// DefaultImportBatchSize 批量写入题目/选项时每批的条数
const DefaultImportBatchSize = 1000

// 题目查询范围
const (
	QueryScopeAll   = "all"
	QueryScopeWrong = "wrong"
)

const (
	MimeJSON  = "application/json"
	MimeJSONL = "application/x-ndjson"
)
