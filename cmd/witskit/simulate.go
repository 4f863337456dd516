package main

import (
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Critlist/witskit/internal/wits"
)

func runSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	listen := fs.String("listen", ":8686", "TCP listen address")
	file := fs.String("file", "", "File containing WITS frames to replay")
	interval := fs.Duration("interval", time.Second, "Delay between frames")
	loop := fs.Bool("loop", false, "Restart from the first frame after the last")
	request := fs.Bool("request", false, "Only send a frame when the client polls with \"&&\"")
	fs.Parse(args)

	if *file == "" {
		log.Fatal("Error: -file flag is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}
	frames := wits.SplitFrames(string(data))
	if len(frames) == 0 {
		log.Fatalf("No WITS frames found in %s", *file)
	}

	ln, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", *listen, err)
	}
	log.Printf("Simulating WITS server on %s (%d frames, interval %s, loop=%v)",
		*listen, len(frames), *interval, *loop)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		log.Printf("Client connected: %s", conn.RemoteAddr())
		go serveConn(conn, frames, *interval, *loop, *request)
	}
}

// serveConn replays frames to one client. In request mode a frame goes out
// only after the client sends a poll sequence; otherwise frames are paced
// by the interval.
func serveConn(conn net.Conn, frames []string, interval time.Duration, loop, request bool) {
	defer conn.Close()
	defer log.Printf("Client disconnected: %s", conn.RemoteAddr())

	done := make(chan struct{})
	defer close(done)

	var polls chan struct{}
	if request {
		polls = make(chan struct{})
		go func() {
			defer close(polls)
			buf := make([]byte, 256)
			for {
				n, err := conn.Read(buf)
				if err != nil {
					return
				}
				for j := 0; j < strings.Count(string(buf[:n]), wits.StartMarker); j++ {
					select {
					case polls <- struct{}{}:
					case <-done:
						return
					}
				}
			}
		}()
	}

	i := 0
	for {
		if request {
			if _, ok := <-polls; !ok {
				return
			}
		}
		if _, err := conn.Write([]byte(frames[i] + "\r\n")); err != nil {
			return
		}
		i++
		if i == len(frames) {
			if !loop {
				return
			}
			i = 0
		}
		if !request {
			time.Sleep(interval)
		}
	}
}
