/*
Package placer is a deterministic image placement library, which fits arbitrary source images
into a fixed size template either by cropping them to fill the template, by resizing them
proportionally or by composing them over a blurred, template filling background.

The package provides a command line interface, supporting various flags for the different
placement policies. To check the supported commands type:

	$ placer --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"

		"github.com/esimov/placer"
	)

	func main() {
		p := placer.NewProcessor(700, 365)

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error placing image: %s", err.Error())
		}
	}
*/
package placer
