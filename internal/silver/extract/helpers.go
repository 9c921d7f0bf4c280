package extract

import "github.com/albapepper/scoracle-ingest/internal/preprocess"

// preprocessRow applies the preprocessing pass to one row. Payloads are
// not preprocessed as a whole before they reach this package, so this
// per-row pass is the only preprocessing the extracted rows receive.
func preprocessRow(row map[string]interface{}) map[string]interface{} {
	return preprocess.Value(row).(map[string]interface{})
}
