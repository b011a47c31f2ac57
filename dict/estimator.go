package dict

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/chewing-go/chewing/phrase"
)

// Estimator computes the next user_freq for a phrase each time it is
// chosen, and tracks the logical clock ("now") that last-used times are
// stamped against (§4.4.4). tick/now persist across sessions because
// they live in the same on-disk store as the phrases they age.
type Estimator interface {
	// Tick advances now by one unit (one keystroke) and returns the new
	// value.
	Tick() (uint64, error)
	// Now reads the current logical clock without advancing it.
	Now() (uint64, error)
	// Estimate returns the new user_freq for p, given its frequency as
	// currently recorded in the dictionary (dictFreq) and the highest
	// frequency among its homophones (maxFreq, from dict.MaxFreq).
	Estimate(p phrase.Phrase, dictFreq, maxFreq int) (int, error)
}

// freqCeiling bounds user_freq independently of dictionary size, per
// §4.4.4's "bounded above by a configured ceiling" requirement.
const freqCeiling = 99999999

// A phrase gains this much just for being chosen again, plus one unit per
// logical tick since it was last used — so a phrase revived after a long
// gap jumps further than one used every few keystrokes, while never
// decreasing the floor set by its recorded or homophone-max frequency.
const shortTermIncrement = 500

const nowKey = "estimator_now"

// Tick advances the logical clock by one and returns the new value.
func (d *SQLiteUserDictionary) Tick() (uint64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, &DictionaryUpdateError{Op: "tick", Err: err}
	}
	defer tx.Rollback()

	now, err := readNow(tx)
	if err != nil {
		return 0, &DictionaryUpdateError{Op: "tick", Err: err}
	}
	now++
	if err := writeNow(tx, now); err != nil {
		return 0, &DictionaryUpdateError{Op: "tick", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return 0, &DictionaryUpdateError{Op: "tick", Err: err}
	}
	return now, nil
}

// Now reads the logical clock without advancing it.
func (d *SQLiteUserDictionary) Now() (uint64, error) {
	var v sql.NullString
	err := d.db.QueryRow(`SELECT value FROM `+tableInfo+` WHERE key = ?`, nowKey).Scan(&v)
	if err != nil && err != sql.ErrNoRows {
		return 0, &DictionaryUpdateError{Op: "now", Err: err}
	}
	if !v.Valid {
		return 0, nil
	}
	return parseUint(v.String), nil
}

// Estimate applies the short/long-term increment curve: the phrase's
// frequency floor (the larger of its recorded and homophone-max
// frequency) plus a recency-weighted bump, clamped at freqCeiling.
func (d *SQLiteUserDictionary) Estimate(p phrase.Phrase, dictFreq, maxFreq int) (int, error) {
	now, err := d.Now()
	if err != nil {
		return 0, err
	}

	floor := dictFreq
	if maxFreq > floor {
		floor = maxFreq
	}

	elapsed := now - timeToTick(p.LastUsed)
	bump := shortTermIncrement + int(elapsed)

	next := floor + bump
	if next > freqCeiling {
		next = freqCeiling
	}
	return next, nil
}

func readNow(tx *sql.Tx) (uint64, error) {
	var v sql.NullString
	err := tx.QueryRow(`SELECT value FROM `+tableInfo+` WHERE key = ?`, nowKey).Scan(&v)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	if !v.Valid {
		return 0, nil
	}
	return parseUint(v.String), nil
}

func writeNow(tx *sql.Tx, now uint64) error {
	_, err := tx.Exec(
		`INSERT INTO `+tableInfo+` (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		nowKey, formatUint(now),
	)
	return err
}

// tickToTime/timeToTick convert between the logical tick clock stored in
// userphrase_v2.time and the wall-clock-shaped phrase.LastUsed field: the
// tick count is stored as a Unix-seconds value so Phrase stays a plain
// time.Time regardless of which dictionary produced it.
func tickToTime(tick uint64) time.Time {
	return time.Unix(int64(tick), 0).UTC()
}

func timeToTick(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix())
}

func parseUint(s string) uint64 {
	v, _ := strconv.ParseUint(s, 10, 64)
	return v
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
