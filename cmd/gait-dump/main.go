// gait-dump prints a generated gait cycle as JSON, one stance per
// line, for plotting and regression diffing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/openpup/go-pup/pkg/gait"
)

func main() {
	mode := flag.String("gait", "walk", "walk or trot")
	dir := flag.String("dir", "forward", "forward or backward")
	turn := flag.String("turn", "straight", "left, straight, or right")
	flag.Parse()

	d := gait.Forward
	if *dir == "backward" {
		d = gait.Backward
	}

	t := gait.Straight
	switch *turn {
	case "left":
		t = gait.Left
	case "right":
		t = gait.Right
	}

	var cycle gait.Cycle
	switch *mode {
	case "walk":
		cycle = gait.Walk(d, t)
	case "trot":
		cycle = gait.Trot(d, t)
	default:
		fmt.Fprintf(os.Stderr, "unknown gait %q\n", *mode)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s %s %s: %d stances, travel %.0fmm\n",
		*mode, *dir, *turn, cycle.Len(), cycle.Travel)

	enc := json.NewEncoder(os.Stdout)
	for _, stance := range cycle.Stances {
		if err := enc.Encode(stance); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
