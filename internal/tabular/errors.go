package tabular

import "errors"

var (
	// ErrTableAbsent indicates the interchange file does not exist
	ErrTableAbsent = errors.New("table file does not exist")

	// ErrTableCorrupt indicates the file exists but cannot be read as a table
	ErrTableCorrupt = errors.New("table file is corrupt")

	// ErrUnsupportedFormat indicates a file extension other than .csv or .xlsx
	ErrUnsupportedFormat = errors.New("unsupported table format (use .csv or .xlsx)")
)
