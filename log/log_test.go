package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
		})

		Convey("When logs.write is off nothing is opened", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})

		Convey("When logs.write is on entries land in today's file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Infof("checked %d characters", 4)
			Debugf("mismatch at position %d", 2)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			contents := string(lo.Must(filesystem.API().ReadFile(path)))
			So(strings.Contains(contents, "checked 4 characters"), ShouldBeTrue)
			So(strings.Contains(contents, "mismatch at position 2"), ShouldBeTrue)
		})
	})
}
