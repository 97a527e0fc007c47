package main

import (
	"fmt"
)

type ListProfilesCmd struct {
}

func (l *ListProfilesCmd) Run(c *Context) error {
	fmt.Printf("Profile      | Record                    | Description\n")

	for _, p := range c.profiles {
		fmt.Printf("%-13s| % X -> % X |", p.Name, p.Needle, p.Replacement)
		if p.Description != "" {
			fmt.Printf(" %s", p.Description)
		}
		fmt.Printf("\n")
	}
	return nil
}
