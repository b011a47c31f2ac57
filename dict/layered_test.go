package dict

import (
	"testing"

	"github.com/chewing-go/chewing/phrase"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLayeredDictionary(t *testing.T) {
	Convey("Upper layers replace matching phrases in place and append new ones", t, func() {
		sys := NewTrieDictionaryBuilder()
		So(sys.Insert(ce4(), phrase.New("測", 1)), ShouldBeNil)
		So(sys.Insert(ce4(), phrase.New("冊", 1)), ShouldBeNil)
		So(sys.Insert(ce4(), phrase.New("側", 1)), ShouldBeNil)
		sysDict := sys.Build()

		user := NewTrieDictionaryBuilder()
		So(user.Insert(ce4(), phrase.New("策", 100)), ShouldBeNil)
		So(user.Insert(ce4(), phrase.New("冊", 100)), ShouldBeNil)
		userDict := user.Build()

		blocked := NewSetBlockList("側")

		layered := NewLayeredDictionary([]Dictionary{sysDict, userDict}, []BlockList{blocked})
		got := layered.LookupPhrase(ce4())

		var texts []string
		for _, p := range got {
			texts = append(texts, p.Text)
		}
		// 測 keeps its base-layer position; 冊's freq is overwritten in
		// place by the user layer; 側 is filtered by the block list; 策
		// is a new phrase appended at the end.
		So(texts, ShouldResemble, []string{"測", "冊", "策"})

		for _, p := range got {
			if p.Text == "冊" {
				So(p.Freq, ShouldEqual, 100)
			}
		}
	})

	Convey("Mutation is applied to every mutable layer in order", t, func() {
		base, err := OpenInMemory()
		So(err, ShouldBeNil)
		overlay, err := OpenInMemory()
		So(err, ShouldBeNil)

		layered := NewLayeredDictionary([]Dictionary{base, overlay}, nil)
		So(layered.Insert(ce4(), phrase.New("測", 1)), ShouldBeNil)

		So(base.LookupPhrase(ce4()), ShouldHaveLength, 1)
		So(overlay.LookupPhrase(ce4()), ShouldHaveLength, 1)
	})

	Convey("An empty layer stack looks up nothing", t, func() {
		layered := NewLayeredDictionary(nil, nil)
		So(layered.LookupPhrase(ce4()), ShouldBeNil)
	})
}
