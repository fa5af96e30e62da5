// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"

	"govoxel/voxellib"
)

func main() {
	flag.Parse()
	if err := voxellib.Main(); err != nil {
		log.Fatalf("%+v", err)
	}
}
