// Command yuletree opens the animated Christmas tree greeting. Click the
// tree to cycle through palettes; drag to orbit the camera.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
