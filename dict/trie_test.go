package dict

import (
	"errors"
	"testing"

	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/phrase"
	. "github.com/smartystreets/goconvey/convey"
)

func ce4() bopomofo.Sequence {
	s := bopomofo.Syllable{}.Update(bopomofo.C).Update(bopomofo.E).Update(bopomofo.Tone4)
	return bopomofo.Sequence{s}
}

func TestTrieDictionary(t *testing.T) {
	Convey("A trie dictionary preserves insertion order on lookup", t, func() {
		b := NewTrieDictionaryBuilder().SetInfo(Info{Name: "test"})
		So(b.Insert(ce4(), phrase.New("測", 1)), ShouldBeNil)
		So(b.Insert(ce4(), phrase.New("冊", 1)), ShouldBeNil)
		So(b.Insert(ce4(), phrase.New("側", 1)), ShouldBeNil)
		d := b.Build()

		got := d.LookupPhrase(ce4())
		So(len(got), ShouldEqual, 3)
		So(got[0].Text, ShouldEqual, "測")
		So(got[1].Text, ShouldEqual, "冊")
		So(got[2].Text, ShouldEqual, "側")
		So(d.About().Name, ShouldEqual, "test")
	})

	Convey("Inserting a duplicate phrase at the same syllables fails", t, func() {
		b := NewTrieDictionaryBuilder()
		So(b.Insert(ce4(), phrase.New("測", 1)), ShouldBeNil)
		err := b.Insert(ce4(), phrase.New("測", 5))
		So(err, ShouldNotBeNil)
		var dup *DuplicatePhraseError
		So(errors.As(err, &dup), ShouldBeTrue)
	})

	Convey("Build publishes structural statistics over the finished tree", t, func() {
		b := NewTrieDictionaryBuilder()
		So(b.Insert(ce4(), phrase.New("測", 1)), ShouldBeNil)
		d := b.Build()
		stats := d.Stats()
		So(stats.Phrases, ShouldEqual, 1)
		So(stats.LeafSets, ShouldEqual, 1)
		So(stats.Roots, ShouldEqual, 1)
		So(stats.MaxDepth, ShouldEqual, 1)
	})

	Convey("A lookup miss returns nothing", t, func() {
		d := NewTrieDictionaryBuilder().Build()
		So(d.LookupPhrase(ce4()), ShouldBeNil)
		So(d.LookupWord(ce4()[0]), ShouldBeNil)
	})
}
