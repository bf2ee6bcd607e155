// Command steglsb hides a text message in the least-significant bits of an
// image and recovers it.
//
// Hide:
//
//	steglsb -op hide -i cover.png -o stego.png -m "secret"
//
// Extract:
//
//	steglsb -op extract -i stego.png
//
// Output must be a lossless format (.png, .bmp, .tif); writing a stego
// image as JPEG would destroy the embedded bits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	steg "github.com/yyyoichi/steglsb"
	"github.com/yyyoichi/steglsb/imageio"
	"github.com/yyyoichi/steglsb/internal/quality"
	"github.com/yyyoichi/steglsb/msg"
)

var (
	op        = flag.String("op", "hide", "hide or extract")
	input     = flag.String("i", "", "input image")
	output    = flag.String("o", "", "output stego image (hide)")
	message   = flag.String("m", "", "message to hide")
	msgFile   = flag.String("f", "", "file containing the message to hide")
	term      = flag.String("term", steg.Terminator, "terminator byte sequence; both ends must agree")
	useGolay  = flag.Bool("golay", false, "enable Golay error correction")
	golaySeed = flag.Int64("seed", msg.DefaultShuffleSeed, "shuffle seed for -golay; both ends must agree")
)

func main() {
	flag.Parse()

	var err error
	switch *op {
	case "hide":
		err = runHide()
	case "extract":
		err = runExtract()
	default:
		err = fmt.Errorf("unknown -op %q (want hide or extract)", *op)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func options() []steg.Option {
	opts := []steg.Option{steg.WithTerminator(*term)}
	if *useGolay {
		opts = append(opts, steg.WithGolay(*golaySeed))
	}
	return opts
}

func runHide() error {
	if *input == "" || *output == "" {
		return errors.New("hide requires -i and -o")
	}
	text := *message
	if *msgFile != "" {
		b, err := os.ReadFile(*msgFile)
		if err != nil {
			return err
		}
		text = string(b)
	}
	if text == "" {
		return errors.New("nothing to hide: provide -m or -f")
	}

	cover, err := imageio.Load(*input)
	if err != nil {
		return err
	}
	stego, err := steg.Embed(cover, text, options()...)
	if err != nil {
		return err
	}
	if err := imageio.Save(*output, stego); err != nil {
		return err
	}
	log.Printf("embedded %d message bytes into %s (image capacity %d bits, PSNR %.2f dB)",
		len(text), *output, cover.Capacity(), quality.PSNR(cover, stego))
	return nil
}

func runExtract() error {
	if *input == "" {
		return errors.New("extract requires -i")
	}
	stego, err := imageio.Load(*input)
	if err != nil {
		return err
	}
	res, err := steg.Extract(stego, options()...)
	if err != nil {
		return err
	}
	if !res.TerminatorFound {
		log.Println("warning: terminator not found; the image may not contain a message, or it is corrupted")
	}
	if res.DroppedBits > 0 {
		log.Printf("warning: %d trailing bits did not form a complete character and were dropped", res.DroppedBits)
	}
	fmt.Println(res.Text)
	return nil
}
