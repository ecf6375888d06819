// README: AI query quota errors and defaults.
package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no AI queries remaining for the current month.
var ErrQuotaExhausted = errors.New("monthly query quota exhausted")

// DefaultQueries is the number of AI-backed queries granted per month.
const DefaultQueries = 200
