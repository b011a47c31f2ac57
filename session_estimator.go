package chewing

import "github.com/chewing-go/chewing/dict"

// Estimator computes the next user_freq for a phrase and tracks the
// logical clock last-used times are stamped against (§4.4.4, §6.4
// estimator.tick/now/estimate). *SQLiteUserDictionary — the value
// OpenUserDict and OpenUserDictReadonly return — satisfies it directly.
type Estimator = dict.Estimator
