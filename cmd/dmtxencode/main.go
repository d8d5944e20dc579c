package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"

	"github.com/ericlevine/dmtxgo/encoder"
)

func main() {
	schemeName := pflag.StringP("scheme", "s", "ASCII", "encodation scheme: ASCII, C40, Text, X12, EDIFACT or Base256")
	sizeName := pflag.String("size", "auto", "symbol size: auto, square, rect, or a size index 0-29")
	latin1 := pflag.Bool("latin1", false, "transcode UTF-8 input to ISO 8859-1 before encoding")
	hexOut := pflag.BoolP("hex", "x", false, "print codewords as hex instead of decimal")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dmtxencode [flags] [message]\n\n")
		fmt.Fprintf(os.Stderr, "Encode a message into Data Matrix data codewords. The message is read\n")
		fmt.Fprintf(os.Stderr, "from the arguments, or from stdin when none are given.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	data, err := readMessage(pflag.Args())
	if err != nil {
		log.Fatal("reading input", "err", err)
	}
	if *latin1 {
		data, err = charmap.ISO8859_1.NewEncoder().Bytes(data)
		if err != nil {
			log.Fatal("input not representable in ISO 8859-1", "err", err)
		}
	}

	scheme, err := encoder.ParseScheme(*schemeName)
	if err != nil {
		log.Fatal("bad --scheme", "err", err)
	}
	sizeIdxRequest, err := parseSize(*sizeName)
	if err != nil {
		log.Fatal("bad --size", "err", err)
	}

	codewords, sizeIdx, err := encoder.EncodeSingleScheme(data, scheme, sizeIdxRequest)
	if err != nil {
		log.Fatal("encode failed", "err", err)
	}

	si := encoder.Symbol(sizeIdx)
	log.Info("encoded",
		"scheme", scheme,
		"symbol", fmt.Sprintf("%dx%d", si.MatrixWidth, si.MatrixHeight),
		"dataWords", len(codewords))

	if *hexOut {
		fmt.Printf("%x\n", codewords)
		return
	}
	fields := make([]string, len(codewords))
	for i, cw := range codewords {
		fields[i] = strconv.Itoa(int(cw))
	}
	fmt.Println(strings.Join(fields, " "))
}

func readMessage(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	return io.ReadAll(os.Stdin)
}

func parseSize(name string) (encoder.SizeIdx, error) {
	switch name {
	case "auto":
		return encoder.SizeShapeAuto, nil
	case "square":
		return encoder.SizeSquareAuto, nil
	case "rect":
		return encoder.SizeRectAuto, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || encoder.Symbol(encoder.SizeIdx(n)) == nil {
		return 0, fmt.Errorf("want auto, square, rect or a size index 0-29, got %q", name)
	}
	return encoder.SizeIdx(n), nil
}
