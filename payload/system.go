package payload

import "fmt"

// SystemType identifies the kind of external system a catalog tree describes.
type SystemType uint8

// Supported system types.
const (
	BigQuery SystemType = iota + 1
	SqlServer
)

func (st SystemType) String() string {
	switch st {
	case BigQuery:
		return "BigQuery"
	case SqlServer:
		return "SqlServer"
	}
	return fmt.Sprintf("SystemType(%d)", st)
}

// ParseSystemType maps names like "Big Query", "big_query" or "SQL Server" to
// a system type. Unknown names result in ErrUnknownSystem.
func ParseSystemType(s string) (SystemType, error) {
	switch normalize(s) {
	case "big_query", "bigquery":
		return BigQuery, nil
	case "sql_server", "sqlserver":
		return SqlServer, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
}
