package main

import (
	"fmt"
	"os"

	"github.com/hamtools/mdf-tools/mdf"
)

type PatchCmd struct {
	Filename string `arg name:"filename" help:"MDF file to patch."`
	Profile  string `optional default:"2m" help:"Band profile to apply."`
	Show     bool   `optional help:"Hexdump the changed bytes after patching."`
}

func (l *PatchCmd) Run(c *Context) error {
	profile, ok := mdf.FindProfile(c.profiles, l.Profile)
	if !ok {
		return fmt.Errorf("Unknown band profile: %s", l.Profile)
	}

	res, err := mdf.PatchFile(l.Filename, mdf.Config{
		Profile: profile,
		LogFunc: logFunc,
	})
	if err != nil {
		return err
	}

	if l.Show {
		before, err := os.ReadFile(res.BackupPath)
		if err != nil {
			return err
		}
		after, err := os.ReadFile(res.Path)
		if err != nil {
			return err
		}
		fmt.Print(dumpChanged(before, after))
	}

	fmt.Println("Done.")
	return nil
}
