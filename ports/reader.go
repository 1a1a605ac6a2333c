package ports

import (
	"evinsight/domain/dataset"
)

// TableReader loads a delimited or spreadsheet file into the shared
// table. Implementations report a FILE_NOT_FOUND error for a missing
// path and a PARSE_ERROR for unreadable content; the session decides how
// to surface either.
type TableReader interface {
	Read(path string) (*dataset.Table, error)
}
