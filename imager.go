// This file is part of Imager.
//
// Imager is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Imager is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Imager.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jetsetilly/imager/easyterm"
	"github.com/jetsetilly/imager/imageloader"
	"github.com/jetsetilly/imager/imagemanager"
	"github.com/jetsetilly/imager/logger"
	"github.com/jetsetilly/imager/modalflag"
	"github.com/jetsetilly/imager/playlist"
	"github.com/jetsetilly/imager/random"
	"github.com/jetsetilly/imager/remote"
	"github.com/jetsetilly/imager/statsview"
	"github.com/jetsetilly/imager/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles interrupts
	// itself so that it can shut down cleanly.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("VIEW", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "VIEW":
		err = view(md, sync)

	case "LIST":
		err = list(md)

	case "VERSION":
		fmt.Println(version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the VIEW and LIST modes
type playlistFlags struct {
	random   *bool
	sort     *bool
	dirsort  *bool
	recurse  *bool
	filelist *string
}

func addPlaylistFlags(md *modalflag.Modes) playlistFlags {
	return playlistFlags{
		random:   md.AddBool("random", false, "randomise the order of images"),
		sort:     md.AddBool("sort", false, "sort images by name, numbers in names sorted by value"),
		dirsort:  md.AddBool("dirsort", false, "sort images by directory and then by name"),
		recurse:  md.AddBool("recurse", false, "descend into directories and archives"),
		filelist: md.AddString("filelist", "", "file containing a list of images, one per line"),
	}
}

// order applies the sort flags. random takes precedence over sort, which
// takes precedence over dirsort
func (f playlistFlags) order(random func(), logical func(), directory func()) {
	switch {
	case *f.random:
		random()
	case *f.sort:
		logical()
	case *f.dirsort:
		directory()
	}
}

func list(md *modalflag.Modes) error {
	md.NewMode()
	flags := addPlaylistFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ids, err := gatherImages(*flags.filelist, md.RemainingArgs(), *flags.recurse)
	if err != nil {
		return err
	}

	pl := playlist.NewPlaylist(random.NewRandom())
	pl.Append(ids...)
	flags.order(pl.RandomSort, pl.LogicalSort, pl.DirectorySort)

	for _, id := range pl.Entries() {
		fmt.Println(id)
	}

	return nil
}

func view(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	flags := addPlaylistFlags(md)
	delay := md.AddDuration("delay", 0, "delay before automatically moving to the next image")
	window := md.AddInt("window", imagemanager.DefaultWindowSize, "number of images to prefetch in each direction")
	poll := md.AddDuration("poll", imagemanager.DefaultPollInterval, "how often the prefetcher checks for work when idle")
	maxdim := md.AddInt("maxdim", 4096, "scale images larger than this in either dimension (zero for no scaling)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	remoteAddr := md.AddString("remote", "", "address on which to listen for remote commands")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	ids, err := gatherImages(*flags.filelist, md.RemainingArgs(), *flags.recurse)
	if err != nil {
		return err
	}

	fmt.Printf("%d images...\n", len(ids))
	if len(ids) == 0 && *remoteAddr == "" {
		return fmt.Errorf("no images to display")
	}

	if *stats {
		stop := statsview.Launch(os.Stdout, statsview.DefaultAddress)
		defer stop()
	}

	loader := imageloader.NewLoader(nil)
	loader.MaxDimension = *maxdim

	pl := playlist.NewPlaylist(random.NewRandom())
	pl.Append(ids...)

	mgr := imagemanager.NewManager(loader,
		imagemanager.WithPlaylist(pl),
		imagemanager.WithWindowSize(*window),
		imagemanager.WithPollInterval(*poll),
	)
	flags.order(mgr.RandomSort, mgr.LogicalSort, mgr.DirectorySort)

	mgr.Start()
	defer func() {
		mgr.Shutdown()
		if n := loader.Outstanding(); n != 0 {
			logger.Logf(logger.Allow, "imager", "%d images not released on shutdown", n)
		}
	}()

	// the viewer handles interrupts so that the image manager and the
	// terminal can be shut down cleanly
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	vw := newViewer(mgr, newTextDisplay(os.Stdout))
	vw.delay = *delay
	vw.recurse = *flags.recurse

	term, err := easyterm.NewTerminal(os.Stdout)
	if err != nil {
		logger.Logf(logger.Allow, "imager", "keyboard not available: %v", err)
	} else {
		defer term.Close()
		vw.keys = term.Keys()
	}

	if *remoteAddr != "" {
		srv := remote.NewServer(mgr.Status, 0)
		addr, err := srv.Listen(*remoteAddr)
		if err != nil {
			return err
		}
		fmt.Printf("remote commands accepted at %s\n", addr)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
		vw.commands = srv.Commands()
	}

	return vw.run(ctx)
}
