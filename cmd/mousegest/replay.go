package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// replay feeds recorded notifications through the daemon. Each line names
// a device followed by either a hex-encoded raw payload or the word
// "release". Blank lines and #-comments are skipped.
func (d *daemon) replay(path string) error {
	var in io.Reader
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening replay file: %w", err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	triggers := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("replay line %d: expected \"<device> <hex|release>\", got %q", lineNo, line)
		}
		device := fields[0]

		if fields[1] == "release" {
			d.session(device).Release()
			if d.debug {
				log.Printf("release: device=%s", device)
			}
			continue
		}

		payload, err := hex.DecodeString(fields[1])
		if err != nil {
			return fmt.Errorf("replay line %d: bad hex payload: %w", lineNo, err)
		}
		fired := d.session(device).HandleNotification(payload)
		triggers += fired
		if d.debug {
			log.Printf("notification: device=%s len=%d fired=%d", device, len(payload), fired)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading replay input: %w", err)
	}

	log.Printf("replay complete: %d line(s), %d trigger(s)", lineNo, triggers)
	return nil
}
