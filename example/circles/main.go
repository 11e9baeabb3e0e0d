// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that shows a list of circle views with animated
// percentages. With -out it renders a single view to a PNG file
// instead of opening a window.

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/circleview/circle"
	"github.com/circleview/circle/anim"
	"github.com/circleview/circle/surface/raster"
	"github.com/lucasb-eyer/go-colorful"

	_ "golang.org/x/image/webp"
)

var (
	count   = flag.Int("count", 20, "number of circles in the list")
	imgFile = flag.String("image", "", "image file (PNG, JPEG or WebP) to show in the circles")
	mode    = flag.String("mode", "centercrop", "image mode: fill, centercrop or absolute")
	bg      = flag.String("bg", "#ffffff", "background color")
	fg      = flag.String("fg", "#ff0000", "foreground color")
	curve   = flag.String("curve", "ease", "animation curve: linear, ease, overshoot or bounce")
	out     = flag.String("out", "", "render a single circle to this PNG file and exit")
	size    = flag.Int("size", 256, "size in pixels of the -out image")
	percent = flag.Float64("percent", .66, "percentage of the -out image")
)

func main() {
	flag.Parse()
	cfg, img, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *out != "" {
		if err := render(*out, cfg, img); err != nil {
			log.Fatal(err)
		}
		return
	}
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Circles"),
			app.Size(unit.Dp(400), unit.Dp(800)),
		)
		if err := newUI(cfg, img, *count).run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadConfig() (circle.Config, image.Image, error) {
	cfg := circle.DefaultConfig
	var err error
	if cfg.Background, err = parseColor(*bg); err != nil {
		return cfg, nil, err
	}
	if cfg.Foreground, err = parseColor(*fg); err != nil {
		return cfg, nil, err
	}
	switch strings.ToLower(*mode) {
	case "fill":
		cfg.ImageMode = circle.Fill
	case "centercrop":
		cfg.ImageMode = circle.CenterCrop
	case "absolute":
		cfg.ImageMode = circle.Absolute
	default:
		return cfg, nil, fmt.Errorf("unknown image mode %q", *mode)
	}
	switch *curve {
	case "linear":
		cfg.Interpolator = anim.Linear
	case "ease":
		cfg.Interpolator = anim.EaseInOut
	case "overshoot":
		cfg.Interpolator = anim.Overshoot(2)
	case "bounce":
		cfg.Interpolator = anim.Bounce
	default:
		return cfg, nil, fmt.Errorf("unknown curve %q", *curve)
	}
	if *imgFile == "" {
		return cfg, nil, nil
	}
	img, err := loadImage(*imgFile)
	return cfg, img, err
}

func parseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// render draws a single view with the software rasterizer.
func render(name string, cfg circle.Config, img image.Image) error {
	sz := image.Pt(*size, *size)
	v := circle.New()
	v.SetConfig(cfg)
	v.SetPercentage(float32(*percent))
	v.SetBounds(sz, circle.Padding{})
	if img != nil {
		v.SetImage(img)
	}
	s := raster.New(sz)
	v.Draw(s)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Dst); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return f.Close()
}
