package filesystem

import (
	"io"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestOpenRegular(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		lo.Must0(API().MkdirAll("/data", 0o755))
		lo.Must0(API().WriteFile("/data/input.txt", []byte("abba#"), 0o644))

		Convey("It opens regular files", func() {
			f, err := OpenRegular("/data/input.txt")
			So(err, ShouldBeNil)
			defer f.Close()
			So(string(lo.Must(io.ReadAll(f))), ShouldEqual, "abba#")
		})

		Convey("It refuses directories", func() {
			_, err := OpenRegular("/data")
			So(err, ShouldNotBeNil)
		})

		Convey("It reports missing files", func() {
			_, err := OpenRegular("/data/missing.txt")
			So(err, ShouldNotBeNil)
		})
	})
}
