package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hamtools/mdf-tools/mdf"
)

type Context struct {
	profiles []mdf.Profile
}

var CLI struct {
	LogLevel int    `optional help:"Higher values give more output."`
	Profiles string `optional help:"TOML file with additional band profiles."`

	Patch        PatchCmd        `cmd default:"1" help:"Rewrite the band limits in an MDF file and repair its checksum."`
	Checksum     ChecksumCmd     `cmd help:"Show the additive checksum of a file."`
	Restore      RestoreCmd      `cmd help:"Restore an MDF file from its .BAK backup."`
	ListProfiles ListProfilesCmd `cmd name:"list-profiles" help:"List available band profiles."`
}

const (
	exitUsage    = 1
	exitNotFound = 2
	exitChecksum = 3
)

func logFunc(level int, format string, param ...interface{}) {
	if level > CLI.LogLevel {
		return
	}
	fmt.Printf(format+"\n", param...)
}

func main() {
	k, err := kong.New(&CLI)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}

	c := &Context{profiles: mdf.BuiltinProfiles()}
	if CLI.Profiles != "" {
		extra, err := mdf.LoadProfiles(CLI.Profiles)
		if err != nil {
			fmt.Println(err)
			os.Exit(exitUsage)
		}
		c.profiles = append(c.profiles, extra...)
	}

	if err := ctx.Run(c); err != nil {
		fmt.Println(err)
		switch {
		case errors.Is(err, mdf.ErrorFileNotFound):
			os.Exit(exitNotFound)
		case errors.Is(err, mdf.ErrorChecksumMismatch):
			os.Exit(exitChecksum)
		}
		os.Exit(exitUsage)
	}
}
