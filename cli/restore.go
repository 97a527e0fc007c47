package main

import (
	"fmt"

	"github.com/hamtools/mdf-tools/mdf"
)

type RestoreCmd struct {
	Filename string `arg name:"filename" help:"MDF file to restore from its backup."`
}

func (l *RestoreCmd) Run(c *Context) error {
	backup, err := mdf.RestoreFile(l.Filename)
	if err != nil {
		return err
	}

	fmt.Printf("Restored %s from %s.\n", l.Filename, backup)
	return nil
}
