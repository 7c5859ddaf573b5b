// Package iojson writes JSON documents for command line output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the JSON shape written when output cannot be produced.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// marshalFailure builds an Error blob by hand for when encoding itself fails.
func marshalFailure(msg string, err error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// WriteWith writes obj to w as indented JSON. Encoding failures are reported
// to ew as an Error and do not return an error themselves.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, marshalFailure("encode output", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
