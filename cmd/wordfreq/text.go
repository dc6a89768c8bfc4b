package main

import "fmt"

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := readSource(deps, c.Source)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	_, err = fmt.Fprintln(deps.Stdout, text)
	return err
}
