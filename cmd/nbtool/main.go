// Command nbtool converts NBT documents between their binary, SNBT,
// and JSON forms.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	nbt "github.com/blockforge/nbt-go"
	"github.com/blockforge/nbt-go/snbt"
)

type cli struct {
	Snbt snbtCmd `cmd:"" help:"Print a binary NBT document as SNBT."`
	JSON jsonCmd `cmd:"" name:"json" help:"Print a binary NBT document as JSON."`
	Pack packCmd `cmd:"" help:"Compile an SNBT document to binary NBT."`
}

type readFlags struct {
	Input   string `arg:"" help:"Input file, or - for stdin." default:"-"`
	Profile string `help:"Protocol profile: java, bedrock, or network." enum:"java,bedrock,network" default:"java"`
	Path    string `help:"Print only the tag at this path, e.g. entities[0].id."`
}

func (f *readFlags) read() (*nbt.Tag, error) {
	profile, err := nbt.ProfileNamed(f.Profile)
	if err != nil {
		return nil, err
	}
	in, closeIn, err := openInput(f.Input)
	if err != nil {
		return nil, err
	}
	defer closeIn()
	root, err := nbt.Read(in, profile)
	if err != nil {
		return nil, err
	}
	if f.Path != "" {
		return nbt.Lookup(root, f.Path)
	}
	return root, nil
}

type snbtCmd struct {
	readFlags
}

func (c *snbtCmd) Run() error {
	root, err := c.read()
	if err != nil {
		return err
	}
	out, err := snbt.Encode(root)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type jsonCmd struct {
	readFlags
}

func (c *jsonCmd) Run() error {
	root, err := c.read()
	if err != nil {
		return err
	}
	out, err := nbt.ToJSON(root)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type packCmd struct {
	Input       string `arg:"" help:"SNBT input file, or - for stdin." default:"-"`
	Output      string `help:"Output file, or - for stdout." short:"o" default:"-"`
	Profile     string `help:"Protocol profile: java, bedrock, or network." enum:"java,bedrock,network" default:"java"`
	Compression string `help:"Compression: none, gzip, or zlib." enum:"none,gzip,zlib" default:"none"`
	Name        string `help:"Name for the root compound." default:""`
}

func (c *packCmd) Run() error {
	profile, err := nbt.ProfileNamed(c.Profile)
	if err != nil {
		return err
	}
	compression, err := nbt.ParseCompression(c.Compression)
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(c.Input)
	if err != nil {
		return err
	}
	src, err := io.ReadAll(in)
	closeIn()
	if err != nil {
		return err
	}
	root, err := snbt.Parse(string(src))
	if err != nil {
		var syn *snbt.SyntaxError
		if errors.As(err, &syn) {
			return fmt.Errorf("%w\n%s", err, syn.HighlightLocation())
		}
		return err
	}
	root.Name = c.Name

	out := os.Stdout
	if c.Output != "-" {
		out, err = os.Create(c.Output)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return nbt.Write(out, root, profile, compression)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("nbtool"),
		kong.Description("Convert NBT documents between binary, SNBT, and JSON forms."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
