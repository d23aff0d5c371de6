//go:build js && wasm

// Command golox-js is the WebAssembly entrypoint for browser and Node.js.
//
// It exposes a global `golox` object with the following API:
//
//	golox.version()          → string
//	golox.parse(source)      → responseJSON
//	golox.print(source)      → string  (throws on diagnostics)
//
// responseJSON has the same shape as the WASI protocol response.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o golox.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	require('./wasm_exec.js')
//	// instantiate golox.wasm with a Go() instance, then:
//	const res = JSON.parse(golox.parse('1 + 2 * 3'))
//	console.log(res.ast) // [ '(+ 1 (* 2 3))' ]
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"

	"github.com/sandrolain/golox"
	"github.com/sandrolain/golox/internal/wire"
)

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	panic(js.Global().Get("Error").New(msg))
}

// jsParse implements golox.parse(source) → responseJSON.
func jsParse(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("golox.parse requires 1 argument: source (string)")
	}
	resp := wire.Process(wire.Request{Source: args[0].String()})
	out, err := json.Marshal(resp)
	if err != nil {
		jsThrow(fmt.Sprintf("golox.parse: marshal response: %v", err))
	}
	return string(out)
}

// jsPrint implements golox.print(source) → prefix form of every expression.
func jsPrint(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("golox.print requires 1 argument: source (string)")
	}
	resp := wire.Process(wire.Request{Source: args[0].String()})
	if len(resp.Diagnostics) > 0 {
		texts := make([]string, len(resp.Diagnostics))
		for i, d := range resp.Diagnostics {
			texts[i] = d.Text
		}
		jsThrow(strings.Join(texts, "\n"))
	}
	return strings.Join(resp.AST, "\n")
}

func main() {
	api := map[string]interface{}{
		"parse": js.FuncOf(jsParse),
		"print": js.FuncOf(jsPrint),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return golox.Version()
		}),
	}
	js.Global().Set("golox", js.ValueOf(api))

	// Block forever; the JS event loop owns execution from here.
	select {}
}
