// SPDX-License-Identifier: MPL-2.0

package main

import cmd "fsh-cli/cmd/fsh"

func main() {
	cmd.Execute()
}
