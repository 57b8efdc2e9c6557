package util

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "character", "characters"), ShouldEqual, "1 character")
		So(Quantify(0, "character", "characters"), ShouldEqual, "0 characters")
		So(Quantify(2, "character", "characters"), ShouldEqual, "2 characters")
	})
}

func TestIsTerminal(t *testing.T) {
	Convey("IsTerminal", t, func() {
		Convey("In-memory readers are not terminals", func() {
			So(IsTerminal(strings.NewReader("abba#")), ShouldBeFalse)
		})
	})
}
