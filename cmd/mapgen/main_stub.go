//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The map viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/mapgen` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless preview use `go run ./cmd/mapserve` or `go run ./cmd/mapsweep -svg`.")
	os.Exit(2)
}
