package dict

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	_ "modernc.org/sqlite"

	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/phrase"
)

// Required tables of the persisted user dictionary (§4.4.2). The _v1/_v2
// suffixes name the on-disk schema generation so a future layout change
// can add a sibling table and migrate into it, the way userphrase_v1 was
// superseded by userphrase_v2 below.
const (
	tableDictionary = "dictionary_v1"
	tableUserphrase = "userphrase_v2"
	tableMigration  = "migration_v1"
	tableInfo       = "info_v1"
	tableLegacyV1   = "userphrase_v1"

	migrationFromV1 = "userphrase_v1_to_v2"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS ` + tableDictionary + ` (
	syllables     BLOB    NOT NULL,
	phrase        TEXT    NOT NULL,
	freq          INTEGER NOT NULL,
	sort_id       INTEGER,
	userphrase_id INTEGER,
	PRIMARY KEY (syllables, phrase)
) WITHOUT ROWID;
CREATE TABLE IF NOT EXISTS ` + tableUserphrase + ` (
	id        INTEGER PRIMARY KEY,
	user_freq INTEGER NOT NULL,
	time      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS ` + tableMigration + ` (
	name TEXT PRIMARY KEY
) WITHOUT ROWID;
CREATE TABLE IF NOT EXISTS ` + tableInfo + ` (
	key   TEXT PRIMARY KEY,
	value TEXT
) WITHOUT ROWID;
`

// SQLiteUserDictionary is the single-writer, persisted user dictionary of
// §4.4.2, backed by database/sql over the pure-Go modernc.org/sqlite
// driver.
type SQLiteUserDictionary struct {
	db       *sql.DB
	readOnly bool
}

var _ Mutable = (*SQLiteUserDictionary)(nil)
var _ Estimator = (*SQLiteUserDictionary)(nil)

// Open opens (creating if necessary) a read-write user dictionary at
// path, running the required schema migration if one is pending.
func Open(path string) (*SQLiteUserDictionary, error) {
	return open(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path), false)
}

// OpenReadOnly opens path without allowing mutation. It never migrates or
// creates tables; the database must already carry the full schema,
// otherwise *MissingTableError is returned.
func OpenReadOnly(path string) (*SQLiteUserDictionary, error) {
	d, err := open(fmt.Sprintf("file:%s?mode=ro&immutable=1", path), true)
	if err != nil {
		return nil, err
	}
	if err := d.ensureTables(); err != nil {
		d.db.Close()
		return nil, err
	}
	return d, nil
}

var inMemoryCounter atomic.Uint64

// OpenInMemory opens a fresh, empty in-memory database — used by
// dictionary builders and tests. Each call gets its own named in-memory
// database so concurrent/sequential callers never share state.
func OpenInMemory() (*SQLiteUserDictionary, error) {
	n := inMemoryCounter.Add(1)
	return open(fmt.Sprintf("file:chewing-mem-%d?mode=memory&cache=shared", n), false)
}

func open(dsn string, readOnly bool) (*SQLiteUserDictionary, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &BuildDictionaryError{Op: "open", Err: err}
	}
	if !readOnly {
		db.SetMaxOpenConns(1) // single-writer, per §4.4.2
	}
	d := &SQLiteUserDictionary{db: db, readOnly: readOnly}
	if readOnly {
		return d, nil
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, &BuildDictionaryError{Op: "initialize_tables", Err: err}
	}
	if err := d.migrateFromLegacy(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// ensureTables verifies the four required tables exist, without creating
// them. Used by OpenReadOnly, which must never mutate a file it opens.
func (d *SQLiteUserDictionary) ensureTables() error {
	for _, table := range []string{tableDictionary, tableUserphrase, tableMigration, tableInfo} {
		var name string
		err := d.db.QueryRow(
			`SELECT name FROM sqlite_schema WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return &MissingTableError{Table: table}
		}
		if err != nil {
			return &BuildDictionaryError{Op: "ensure_tables", Err: err}
		}
	}
	return nil
}

// Close releases the underlying connection.
func (d *SQLiteUserDictionary) Close() error { return d.db.Close() }

// Compact materializes the current contents to a fresh file at path via
// VACUUM INTO, the mechanism builders use to publish a finished store
// (§6.2).
func (d *SQLiteUserDictionary) Compact(path string) error {
	_, err := d.db.Exec(`VACUUM INTO ?`, path)
	if err != nil {
		return &BuildDictionaryError{Op: "vacuum_into", Err: err}
	}
	return nil
}

// LookupPhrase returns phrases under syllables ordered by
// (sort_id ASC, freq DESC, text DESC), rows without a sort_id sorting
// last.
func (d *SQLiteUserDictionary) LookupPhrase(syllables bopomofo.Sequence) []phrase.Phrase {
	key := syllables.EncodeBytes()
	rows, err := d.db.Query(`
		SELECT d.phrase, COALESCE(u.user_freq, d.freq), u.time
		FROM `+tableDictionary+` d
		LEFT JOIN `+tableUserphrase+` u ON d.userphrase_id = u.id
		WHERE d.syllables = ?
		ORDER BY (d.sort_id IS NULL), d.sort_id ASC, COALESCE(u.user_freq, d.freq) DESC, d.phrase DESC
	`, key)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []phrase.Phrase
	for rows.Next() {
		var text string
		var freq int
		var tick sql.NullInt64
		if err := rows.Scan(&text, &freq, &tick); err != nil {
			return out
		}
		p := phrase.Phrase{Text: text, Freq: freq}
		if tick.Valid {
			p.LastUsed = tickToTime(uint64(tick.Int64))
		}
		out = append(out, p)
	}
	return out
}

// LookupWord is LookupPhrase for a single syllable.
func (d *SQLiteUserDictionary) LookupWord(s bopomofo.Syllable) []phrase.Phrase {
	return d.LookupPhrase(bopomofo.Sequence{s})
}

// Entries enumerates every stored (syllables, phrase) pair.
func (d *SQLiteUserDictionary) Entries() []Entry {
	rows, err := d.db.Query(`
		SELECT d.syllables, d.phrase, COALESCE(u.user_freq, d.freq)
		FROM ` + tableDictionary + ` d
		LEFT JOIN ` + tableUserphrase + ` u ON d.userphrase_id = u.id
	`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var raw []byte
		var text string
		var freq int
		if err := rows.Scan(&raw, &text, &freq); err != nil {
			return out
		}
		seq, err := bopomofo.DecodeSequenceBytes(raw)
		if err != nil {
			continue
		}
		out = append(out, Entry{Syllables: seq, Phrase: phrase.Phrase{Text: text, Freq: freq}})
	}
	return out
}

// About reads the six metadata keys from the info table.
func (d *SQLiteUserDictionary) About() Info {
	var info Info
	for key, dst := range map[string]*string{
		"name":         &info.Name,
		"copyright":    &info.Copyright,
		"license":      &info.License,
		"version":      &info.Version,
		"software":     &info.Software,
		"created_date": &info.CreatedDate,
	} {
		var v sql.NullString
		if err := d.db.QueryRow(`SELECT value FROM `+tableInfo+` WHERE key = ?`, key).Scan(&v); err == nil && v.Valid {
			*dst = v.String
		}
	}
	return info
}

// SetInfo writes every non-empty field of info into the info table,
// inside a single transaction.
func (d *SQLiteUserDictionary) SetInfo(info Info) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &BuildDictionaryError{Op: "set_info", Err: err}
	}
	defer tx.Rollback()

	fields := map[string]string{
		"name":         info.Name,
		"copyright":    info.Copyright,
		"license":      info.License,
		"version":      info.Version,
		"software":     info.Software,
		"created_date": info.CreatedDate,
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO `+tableInfo+` (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value,
		); err != nil {
			return &BuildDictionaryError{Op: "set_info", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &BuildDictionaryError{Op: "set_info", Err: err}
	}
	return nil
}

// Insert adds a brand-new phrase at syllables. It fails with
// *DuplicatePhraseError if the same text is already stored there.
func (d *SQLiteUserDictionary) Insert(syllables bopomofo.Sequence, p phrase.Phrase) error {
	key := syllables.EncodeBytes()
	var exists int
	err := d.db.QueryRow(
		`SELECT 1 FROM `+tableDictionary+` WHERE syllables = ? AND phrase = ?`, key, p.Text,
	).Scan(&exists)
	if err == nil {
		return &DuplicatePhraseError{Syllables: syllables, Text: p.Text}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return &DictionaryUpdateError{Op: "insert", Err: err}
	}
	if _, err := d.db.Exec(
		`INSERT INTO `+tableDictionary+` (syllables, phrase, freq, sort_id, userphrase_id) VALUES (?, ?, ?, NULL, NULL)`,
		key, p.Text, p.Freq,
	); err != nil {
		return &DictionaryUpdateError{Op: "insert", Err: err}
	}
	return nil
}

// Update changes the frequency and last-used time of an existing phrase,
// UPSERTing the linked userphrase row (§4.4.2): the first update after a
// phrase enters the user dictionary allocates its userphrase row and
// links it; later updates overwrite it in place.
func (d *SQLiteUserDictionary) Update(syllables bopomofo.Sequence, p phrase.Phrase, userFreq int, t uint64) error {
	key := syllables.EncodeBytes()

	tx, err := d.db.Begin()
	if err != nil {
		return &DictionaryUpdateError{Op: "update", Err: err}
	}
	defer tx.Rollback()

	var userphraseID sql.NullInt64
	err = tx.QueryRow(
		`SELECT userphrase_id FROM `+tableDictionary+` WHERE syllables = ? AND phrase = ?`, key, p.Text,
	).Scan(&userphraseID)
	if errors.Is(err, sql.ErrNoRows) {
		// Not present yet: an update on a phrase that only exists in a
		// lower layer becomes an insert here, linked immediately.
		res, err := tx.Exec(
			`INSERT INTO `+tableUserphrase+` (user_freq, time) VALUES (?, ?)`, userFreq, t,
		)
		if err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
		if _, err := tx.Exec(
			`INSERT INTO `+tableDictionary+` (syllables, phrase, freq, sort_id, userphrase_id) VALUES (?, ?, ?, NULL, ?)`,
			key, p.Text, p.Freq, id,
		); err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
		return tx.Commit()
	}
	if err != nil {
		return &DictionaryUpdateError{Op: "update", Err: err}
	}

	if userphraseID.Valid {
		if _, err := tx.Exec(
			`UPDATE `+tableUserphrase+` SET user_freq = ?, time = ? WHERE id = ?`, userFreq, t, userphraseID.Int64,
		); err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
	} else {
		res, err := tx.Exec(
			`INSERT INTO `+tableUserphrase+` (user_freq, time) VALUES (?, ?)`, userFreq, t,
		)
		if err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
		if _, err := tx.Exec(
			`UPDATE `+tableDictionary+` SET userphrase_id = ? WHERE syllables = ? AND phrase = ?`, id, key, p.Text,
		); err != nil {
			return &DictionaryUpdateError{Op: "update", Err: err}
		}
	}
	return tx.Commit()
}

// Remove deletes the row matching (syllables, text), along with its
// linked userphrase row if one exists.
func (d *SQLiteUserDictionary) Remove(syllables bopomofo.Sequence, text string) error {
	key := syllables.EncodeBytes()
	tx, err := d.db.Begin()
	if err != nil {
		return &DictionaryUpdateError{Op: "remove", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM `+tableUserphrase+`
		 WHERE id IN (SELECT userphrase_id FROM `+tableDictionary+` WHERE syllables = ? AND phrase = ? AND userphrase_id IS NOT NULL)`,
		key, text,
	); err != nil {
		return &DictionaryUpdateError{Op: "remove", Err: err}
	}
	if _, err := tx.Exec(
		`DELETE FROM `+tableDictionary+` WHERE syllables = ? AND phrase = ?`, key, text,
	); err != nil {
		return &DictionaryUpdateError{Op: "remove", Err: err}
	}
	return tx.Commit()
}

// migrateFromLegacy performs the one-time, idempotent migration from the
// fixed-width userphrase_v1 layout (16 phone_N columns) into the split
// dictionary_v1/userphrase_v2 schema (§4.4.2). It is a no-op when the
// migration already ran or the legacy table doesn't exist.
func (d *SQLiteUserDictionary) migrateFromLegacy() error {
	var done string
	err := d.db.QueryRow(`SELECT name FROM `+tableMigration+` WHERE name = ?`, migrationFromV1).Scan(&done)
	if err == nil {
		return nil // already migrated
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return &BuildDictionaryError{Op: "migrate", Err: err}
	}

	var legacyExists string
	err = d.db.QueryRow(
		`SELECT name FROM sqlite_schema WHERE type = 'table' AND name = ?`, tableLegacyV1,
	).Scan(&legacyExists)
	if errors.Is(err, sql.ErrNoRows) {
		// Nothing to migrate; record completion so we never scan for the
		// legacy table again.
		_, err := d.db.Exec(`INSERT INTO `+tableMigration+` (name) VALUES (?)`, migrationFromV1)
		if err != nil {
			return &BuildDictionaryError{Op: "migrate", Err: err}
		}
		return nil
	}
	if err != nil {
		return &BuildDictionaryError{Op: "migrate", Err: err}
	}

	tx, err := d.db.Begin()
	if err != nil {
		return &BuildDictionaryError{Op: "migrate", Err: err}
	}
	defer tx.Rollback()

	const phoneColumns = 16
	cols := make([]string, phoneColumns)
	for i := range cols {
		cols[i] = fmt.Sprintf("phone_%d", i)
	}
	query := fmt.Sprintf(
		`SELECT %s, phrase, orig_freq, user_freq, time FROM `+tableLegacyV1,
		joinColumns(cols),
	)
	rows, err := tx.Query(query)
	if err != nil {
		return &BuildDictionaryError{Op: "migrate", Err: err}
	}

	type legacyRow struct {
		phones           [phoneColumns]uint16
		phrase           string
		origFreq         int
		userFreq         int
		tick             int64
	}
	var legacy []legacyRow
	for rows.Next() {
		var r legacyRow
		dest := make([]any, 0, phoneColumns+4)
		for i := range r.phones {
			dest = append(dest, &r.phones[i])
		}
		dest = append(dest, &r.phrase, &r.origFreq, &r.userFreq, &r.tick)
		if err := rows.Scan(dest...); err != nil {
			rows.Close()
			return &BuildDictionaryError{Op: "migrate", Err: err}
		}
		legacy = append(legacy, r)
	}
	rows.Close()

	for _, r := range legacy {
		var syllables bopomofo.Sequence
		for _, phone := range r.phones {
			if phone == 0 {
				break
			}
			s, err := bopomofo.Decode(phone)
			if err != nil {
				return &BuildDictionaryError{Op: "migrate", Err: err}
			}
			syllables = append(syllables, s)
		}
		key := syllables.EncodeBytes()

		res, err := tx.Exec(
			`INSERT INTO `+tableUserphrase+` (user_freq, time) VALUES (?, ?)`, r.userFreq, r.tick,
		)
		if err != nil {
			return &BuildDictionaryError{Op: "migrate", Err: err}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return &BuildDictionaryError{Op: "migrate", Err: err}
		}
		if _, err := tx.Exec(
			`INSERT INTO `+tableDictionary+` (syllables, phrase, freq, sort_id, userphrase_id) VALUES (?, ?, ?, NULL, ?)
			 ON CONFLICT(syllables, phrase) DO UPDATE SET userphrase_id = excluded.userphrase_id`,
			key, r.phrase, r.origFreq, id,
		); err != nil {
			return &BuildDictionaryError{Op: "migrate", Err: err}
		}
	}

	if _, err := tx.Exec(`INSERT INTO `+tableMigration+` (name) VALUES (?)`, migrationFromV1); err != nil {
		return &BuildDictionaryError{Op: "migrate", Err: err}
	}
	return tx.Commit()
}

func joinColumns(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
