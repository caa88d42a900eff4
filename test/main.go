package main

import (
	"fmt"
	"os"

	argparsegen "github.com/vsego/argparse-gen"
)

const demoSchema = `
module: demo
objects:
  greet:
    doc: |
      Print a greeting.

      :param name: Who to greet.
      :param shout: Print the greeting in upper case.
      :param times: How many times to repeat the greeting.
    params:
      - name: name
        kind: positional_only
      - name: shout
        annotation: {type: bool}
        default: false
      - name: times
        annotation: {type: int}
        default: 1
`

func main() {
	gen, err := argparsegen.FromString(demoSchema, "greet")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building generator:", err)
		os.Exit(1)
	}

	code, err := gen.Code()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating code:", err)
		os.Exit(1)
	}

	fmt.Println(code)
}
