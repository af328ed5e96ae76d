//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"procnoise/internal/app"
	"procnoise/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := field.Fields()[cfg.Field]
	if !ok {
		log.Fatalf("unknown field %q", cfg.Field)
	}

	fld, err := factory(map[string]string{
		"seed":       strconv.FormatInt(cfg.Seed, 10),
		"freq":       fmt.Sprintf("%g", cfg.Frequency),
		"octaves":    strconv.Itoa(cfg.Octaves),
		"turbulence": strconv.FormatBool(cfg.Turbulence),
	})
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(fld, cfg.Scale, cfg.Seed)
	size := fld.Size()

	ebiten.SetWindowTitle("noiseview — " + fld.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
