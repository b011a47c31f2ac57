package dict

import (
	"testing"

	"github.com/chewing-go/chewing/phrase"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSQLiteUserDictionary(t *testing.T) {
	Convey("Insert then lookup round-trips a phrase", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		So(d.Insert(ce4(), phrase.New("策", 42)), ShouldBeNil)
		got := d.LookupPhrase(ce4())
		So(got, ShouldHaveLength, 1)
		So(got[0].Text, ShouldEqual, "策")
		So(got[0].Freq, ShouldEqual, 42)
	})

	Convey("Inserting a duplicate (syllables, text) pair fails", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		So(d.Insert(ce4(), phrase.New("策", 1)), ShouldBeNil)
		err = d.Insert(ce4(), phrase.New("策", 2))
		So(err, ShouldNotBeNil)
	})

	Convey("Update upserts a userphrase row and lookup reflects the new freq", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		So(d.Insert(ce4(), phrase.New("策", 1)), ShouldBeNil)
		So(d.Update(ce4(), phrase.New("策", 1), 500, 10), ShouldBeNil)

		got := d.LookupPhrase(ce4())
		So(got, ShouldHaveLength, 1)
		So(got[0].Freq, ShouldEqual, 500)

		So(d.Update(ce4(), phrase.New("策", 1), 900, 20), ShouldBeNil)
		got = d.LookupPhrase(ce4())
		So(got[0].Freq, ShouldEqual, 900)
	})

	Convey("Update on a phrase absent from this layer inserts it", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		So(d.Update(ce4(), phrase.New("冊", 1), 100, 5), ShouldBeNil)
		got := d.LookupPhrase(ce4())
		So(got, ShouldHaveLength, 1)
		So(got[0].Freq, ShouldEqual, 100)
	})

	Convey("Remove deletes the matching row and its linked userphrase row", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		So(d.Insert(ce4(), phrase.New("策", 1)), ShouldBeNil)
		So(d.Update(ce4(), phrase.New("策", 1), 500, 10), ShouldBeNil)
		So(d.Remove(ce4(), "策"), ShouldBeNil)
		So(d.LookupPhrase(ce4()), ShouldBeEmpty)
	})

	Convey("Lookup orders by sort_id ASC, freq DESC, text DESC, nulls last", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		key := ce4().EncodeBytes()
		rows := []struct {
			text   string
			freq   int
			sortID any
		}{
			{"A", 1, 2},
			{"B", 5, nil},
			{"D", 5, nil},
			{"C", 9, 1},
		}
		for _, r := range rows {
			_, err := d.db.Exec(
				`INSERT INTO `+tableDictionary+` (syllables, phrase, freq, sort_id, userphrase_id) VALUES (?, ?, ?, ?, NULL)`,
				key, r.text, r.freq, r.sortID,
			)
			So(err, ShouldBeNil)
		}

		got := d.LookupPhrase(ce4())
		var texts []string
		for _, p := range got {
			texts = append(texts, p.Text)
		}
		// sort_id 1 (C) first, then sort_id 2 (A), then the two NULLs by
		// freq DESC/text DESC (tied freq 5: D before B).
		So(texts, ShouldResemble, []string{"C", "A", "D", "B"})
	})

	Convey("About reads back what SetInfo wrote", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		So(d.SetInfo(Info{Name: "user", Version: "1"}), ShouldBeNil)
		info := d.About()
		So(info.Name, ShouldEqual, "user")
		So(info.Version, ShouldEqual, "1")
	})

	Convey("The legacy migration records completion and is a no-op on a fresh store", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		var name string
		err = d.db.QueryRow(`SELECT name FROM `+tableMigration+` WHERE name = ?`, migrationFromV1).Scan(&name)
		So(err, ShouldBeNil)
		So(name, ShouldEqual, migrationFromV1)

		So(d.migrateFromLegacy(), ShouldBeNil)
	})
}

func TestEstimator(t *testing.T) {
	Convey("Tick advances and persists the logical clock", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		n0, err := d.Now()
		So(err, ShouldBeNil)
		So(n0, ShouldEqual, 0)

		n1, err := d.Tick()
		So(err, ShouldBeNil)
		So(n1, ShouldEqual, 1)

		n2, err := d.Now()
		So(err, ShouldBeNil)
		So(n2, ShouldEqual, 1)
	})

	Convey("Estimate is monotone in dict freq and bounded by the ceiling", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		low, err := d.Estimate(phrase.New("策", 1), 1, 1)
		So(err, ShouldBeNil)
		high, err := d.Estimate(phrase.New("策", 1), 1000, 1000)
		So(err, ShouldBeNil)
		So(high, ShouldBeGreaterThan, low)
		So(high, ShouldBeLessThanOrEqualTo, freqCeiling)
	})

	Convey("Estimate grows with elapsed time since last use", t, func() {
		d, err := OpenInMemory()
		So(err, ShouldBeNil)
		defer d.Close()

		for i := 0; i < 100; i++ {
			_, err := d.Tick()
			So(err, ShouldBeNil)
		}

		recent := phrase.New("策", 1)
		recent.LastUsed = tickToTime(99)
		stale := phrase.New("策", 1)
		stale.LastUsed = tickToTime(0)

		recentEstimate, err := d.Estimate(recent, 1, 1)
		So(err, ShouldBeNil)
		staleEstimate, err := d.Estimate(stale, 1, 1)
		So(err, ShouldBeNil)
		So(staleEstimate, ShouldBeGreaterThan, recentEstimate)
	})
}
