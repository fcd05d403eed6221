//go:build ignore

// generate_ship draws the default ship sprite into assets/ship.png.
//
//	go run generate_ship.go
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

const size = 128

var (
	hullColor    = color.RGBA{200, 200, 215, 255}
	outlineColor = color.RGBA{40, 40, 60, 255}
	cockpitColor = color.RGBA{80, 170, 255, 255}
	flameColor   = color.RGBA{255, 140, 0, 255}
)

type point struct{ x, y float64 }

// hull is the arrow-shaped body, nose pointing up the screen.
var hull = [3]point{{64, 8}, {112, 112}, {16, 112}}

func edge(a, b, p point) float64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

func inHull(x, y int) bool {
	if x < 0 || y < 0 || x >= size || y >= size {
		return false
	}
	// engine notch at the back
	if y > 96 && x >= 52 && x < 76 {
		return false
	}
	p := point{float64(x) + 0.5, float64(y) + 0.5}
	e0 := edge(hull[0], hull[1], p)
	e1 := edge(hull[1], hull[2], p)
	e2 := edge(hull[2], hull[0], p)
	return e0 >= 0 && e1 >= 0 && e2 >= 0
}

func inCockpit(x, y int) bool {
	dx := (float64(x) + 0.5 - 64) / 10
	dy := (float64(y) + 0.5 - 60) / 18
	return dx*dx+dy*dy <= 1
}

func inFlame(x, y int) bool {
	if y < 104 || y >= 120 {
		return false
	}
	return (x >= 34 && x < 46) || (x >= 82 && x < 94)
}

func drawShip() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch {
			case inFlame(x, y):
				img.Set(x, y, flameColor)
			case !inHull(x, y):
			case !inHull(x-1, y) || !inHull(x+1, y) || !inHull(x, y-1) || !inHull(x, y+1):
				img.Set(x, y, outlineColor)
			case inCockpit(x, y):
				img.Set(x, y, cockpitColor)
			default:
				img.Set(x, y, hullColor)
			}
		}
	}
	return img
}

func main() {
	path := filepath.Join("assets", "ship.png")

	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Error creating %s: %v\n", path, err)
		os.Exit(1)
	}

	err = png.Encode(f, drawShip())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", path)
}
