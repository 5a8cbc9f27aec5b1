// zon - ZON codec CLI tool
//
// Usage:
//
//	zon encode [file.json]   Encode JSON (or JSONC) to ZON on stdout
//	zon decode [file.zonf]   Decode ZON to JSON on stdout
//	zon version              Print version info
//
// If no file is given, reads from stdin.
//
// Exit codes: 0 success, 2 usage error, 3 decode error, 4 encode error,
// 5 I/O error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tidwall/jsonc"

	"github.com/zon-format/zon-go/zon"
)

const version = "1.0.2"

const (
	exitUsage  = 2
	exitDecode = 3
	exitEncode = 4
	exitIO     = 5
)

// CLI defines the command-line interface.
var CLI struct {
	Encode  encodeCmd  `cmd:"" help:"Encode JSON to ZON."`
	Decode  decodeCmd  `cmd:"" help:"Decode ZON to JSON."`
	Version versionCmd `cmd:"" help:"Print version info."`
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

type encodeCmd struct {
	Path string `arg:"" optional:"" help:"Input JSON file. Reads stdin when omitted." type:"path"`

	NoSortKeys      bool `help:"Keep object keys in input order instead of sorting (table columns stay sorted)."`
	NoDotFlatten    bool `help:"Never emit dot-flattened keys."`
	TrailingNewline bool `help:"End the document with a newline."`
}

func (c *encodeCmd) Run() error {
	data, err := readInput(c.Path)
	if err != nil {
		return &exitError{exitIO, err}
	}

	// Accept JSONC on the way in; comments and trailing commas are
	// stripped before parsing.
	value, err := zon.FromJSON(jsonc.ToJSON(data))
	if err != nil {
		return &exitError{exitEncode, err}
	}

	opts := zon.DefaultEncodeOptions()
	opts.SortKeys = !c.NoSortKeys
	opts.DotFlatten = !c.NoDotFlatten
	opts.EnsureTrailingNewline = c.TrailingNewline

	out, err := zon.EncodeValue(value, opts)
	if err != nil {
		return &exitError{exitEncode, err}
	}

	if _, err := fmt.Print(out); err != nil {
		return &exitError{exitIO, err}
	}
	return nil
}

type decodeCmd struct {
	Path string `arg:"" optional:"" help:"Input ZON file. Reads stdin when omitted." type:"path"`

	Loose            bool `help:"Degrade row/field count mismatches instead of failing."`
	MaxDocumentBytes int  `help:"Document byte limit." default:"-1"`
	MaxLineBytes     int  `help:"Line byte limit." default:"-1"`
	MaxArrayLen      int  `help:"Array length limit." default:"-1"`
	MaxObjectKeys    int  `help:"Object key count limit." default:"-1"`
	MaxDepth         int  `help:"Nesting depth limit." default:"-1"`
}

func (c *decodeCmd) Run() error {
	data, err := readInput(c.Path)
	if err != nil {
		return &exitError{exitIO, err}
	}

	opts := zon.DefaultDecodeOptions()
	opts.Strict = !c.Loose
	if c.MaxDocumentBytes >= 0 {
		opts.MaxDocumentBytes = c.MaxDocumentBytes
	}
	if c.MaxLineBytes >= 0 {
		opts.MaxLineBytes = c.MaxLineBytes
	}
	if c.MaxArrayLen >= 0 {
		opts.MaxArrayLen = c.MaxArrayLen
	}
	if c.MaxObjectKeys >= 0 {
		opts.MaxObjectKeys = c.MaxObjectKeys
	}
	if c.MaxDepth >= 0 {
		opts.MaxDepth = c.MaxDepth
	}

	value, err := zon.DecodeWithOptions(string(data), opts)
	if err != nil {
		return &exitError{exitDecode, err}
	}

	out, err := zon.ToJSON(value)
	if err != nil {
		return &exitError{exitDecode, err}
	}

	if _, err := fmt.Println(string(out)); err != nil {
		return &exitError{exitIO, err}
	}
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run() error {
	fmt.Printf("zon %s\n", version)
	return nil
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("zon"),
		kong.Description("ZON (Zero Overhead Notation) codec."),
		kong.UsageOnError(),
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ee, ok := err.(*exitError); ok {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}
