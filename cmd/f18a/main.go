// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "gopkg.in/urfave/cli.v2"

	"github.com/hellige/f18a-go/debugger"
	"github.com/hellige/f18a-go/node"
	"github.com/hellige/f18a-go/term"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("f18a%s\n", c.App.Version)
	}

	app := &cli.App{
		Name:      "f18a",
		Usage:     "emulate a single F18A-style computational node",
		Version:   node.Version,
		ArgsUsage: "<image>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "graphics",
				Aliases: []string{"g"},
				Usage:   "enable graphical display window",
			},
			&cli.BoolFlag{
				Name:    "debug-boot",
				Aliases: []string{"d"},
				Usage:   "enter debugger on boot",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		if code, ok := err.(cli.ExitCoder); ok {
			os.Exit(code.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stdoutLogger sends every node diagnostic (range clips, rejected ROM
// writes, out-of-range I/O access) to the same stream as the rest of
// the emulator's messages, mirroring how the original funnels
// everything through one message sink.
type stdoutLogger struct{}

func (stdoutLogger) Log(msg string) { fmt.Println(msg) }

func run(c *cli.Context) error {
	node.SetLogger(stdoutLogger{})

	if c.Bool("graphics") {
		fmt.Fprintln(os.Stderr, "graphics not supported in this build!")
		fmt.Fprintln(os.Stderr, "  (perhaps try installing a display backend and rebuilding?)")
		return cli.Exit("", 1)
	}

	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}
	image := c.Args().Get(0)

	host := term.NewHost()
	defer host.Restore()

	n := node.New()
	r := node.NewRunner(n)

	installSignalHandlers(r)

	f, err := os.Open(image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading image '%s': %v\n", image, err)
		return cli.Exit("", 1)
	}
	loaded, err := n.LoadCore(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading image '%s': %v\n", image, err)
		return cli.Exit("", 1)
	}
	fmt.Printf("loaded image from %s: %#05x words\n", image, loaded)

	fmt.Printf("welcome to f18a, version %s\n", node.Version)
	fmt.Println("send SIGINT for debugger, SIGQUIT to exit.")

	dbg := debugger.New(os.Stdin, os.Stdout)
	r.Run(host, dbg.Run, c.Bool("debug-boot"))

	fmt.Println(" * f18a halted.")
	return nil
}

func installSignalHandlers(r *node.Runner) {
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT)
	go func() {
		for range sigint {
			r.SetBreak()
		}
	}()

	sigquit := make(chan os.Signal, 1)
	signal.Notify(sigquit, syscall.SIGQUIT)
	go func() {
		for range sigquit {
			r.SetDie()
		}
	}()
}
