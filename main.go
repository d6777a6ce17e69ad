// SPDX-License-Identifier: MPL-2.0

package main

import cmd "dnxpath/cmd/dnxpath"

func main() {
	cmd.Execute()
}
