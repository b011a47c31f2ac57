package phrase

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPhrase(t *testing.T) {
	Convey("Len counts runes, not bytes", t, func() {
		p := New("測試", 1)
		So(p.Len(), ShouldEqual, 2)
	})

	Convey("Less orders by freq descending, then text descending", t, func() {
		a := New("測", 10)
		b := New("冊", 10)
		c := New("側", 1)
		So(Less(a, b), ShouldBeTrue) // same freq, "測" > "冊"
		So(Less(b, a), ShouldBeFalse)
		So(Less(a, c), ShouldBeTrue) // higher freq wins regardless of text
	})
}
