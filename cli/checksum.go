package main

import (
	"fmt"

	"github.com/hamtools/mdf-tools/mdf"
)

type ChecksumCmd struct {
	Filename string `arg name:"filename" help:"File to checksum."`
}

func (l *ChecksumCmd) Run(c *Context) error {
	sum, size, err := mdf.ChecksumFile(l.Filename)
	if err != nil {
		return err
	}

	fmt.Printf("%04X  %8d bytes  %s\n", sum, size, l.Filename)
	return nil
}
