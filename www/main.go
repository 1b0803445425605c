//go:build js && wasm

package main

import (
	"fmt"
	"log/slog"
	"os"
	"syscall/js"

	"pentrace/pkg/vectorize"
)

func main() {
	vectorize.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
	js.Global().Set("goTracePaths", js.FuncOf(goTracePaths))
	select {}
}

// goTracePaths is the JavaScript entry point. It takes the RGBA bytes of an
// ImageData (Uint8Array or Uint8ClampedArray), its width and height and the
// number of partners, and returns the partitioned strokes as a JSON string.
// Bad input is returned as a JavaScript Error value.
func goTracePaths(this js.Value, args []js.Value) any {
	if len(args) != 4 {
		return jsError(fmt.Errorf("goTracePaths: want 4 arguments, got %d", len(args)))
	}
	pixels := args[0]
	width := args[1].Int()
	height := args[2].Int()

	opts := vectorize.DefaultOptions()
	opts.Partners = args[3].Int()

	data := make([]byte, pixels.Length())
	js.CopyBytesToGo(data, toUint8Array(pixels))

	img, err := vectorize.NewImage(data, width, height)
	if err != nil {
		return jsError(err)
	}
	result, err := vectorize.Vectorize(img, opts)
	if err != nil {
		return jsError(err)
	}
	out, err := vectorize.MarshalPartitions(result.Partitions)
	if err != nil {
		return jsError(err)
	}
	return string(out)
}

// toUint8Array views a Uint8ClampedArray as a Uint8Array, which is what
// js.CopyBytesToGo accepts.
func toUint8Array(v js.Value) js.Value {
	uint8Array := js.Global().Get("Uint8Array")
	if v.InstanceOf(uint8Array) {
		return v
	}
	return uint8Array.New(v.Get("buffer"), v.Get("byteOffset"), v.Get("byteLength"))
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
