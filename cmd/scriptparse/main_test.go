/*
File    : barescript/cmd/scriptparse/main_test.go

End-to-end CLI tests driven by github.com/rogpeppe/go-internal/testscript,
the same harness the cue-lang/cue example pack uses for its `cue` command
(cmd/cue/cmd/script_test.go, doc/tutorial/basics/script_test.go): TestMain
registers "scriptparse" as a fake subprocess command via RunMain so each
script in testdata/script/*.txt can `exec scriptparse ...` against a real
parsed Script without forking the actual compiled binary.
*/
package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"scriptparse": run,
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
