package main

import (
	"bufio"
	"encoding/json"
	"io"
)

// Run ticks the scene conf.Ticks times and writes one JSON frame per line
func Run(conf *Config, w io.Writer) error {
	scene, err := NewScene(conf)
	if err != nil {
		return err
	}

	buffered := bufio.NewWriter(w)
	encoder := json.NewEncoder(buffered)
	for range conf.Ticks {
		if err := encoder.Encode(scene.Advance()); err != nil {
			return err
		}
	}

	return buffered.Flush()
}
