//go:build wasip1

// Command golox-wasi is the WASI (wasip1) entrypoint for use from any
// language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "source": "<lox>", "maxDepth": 256 }
//	stdout: { "tokens": [...], "ast": [...], "diagnostics": [...] }
//	        { "error": "<message>" }   on a malformed request
//
// The exit code is 0 on a clean run, 1 if diagnostics were reported and 2
// on a malformed request.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o golox.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"source":"1 + 2 * 3"}' | wasmtime golox.wasm
package main

import (
	"os"

	"github.com/sandrolain/golox/internal/wire"
)

func main() {
	os.Exit(wire.Serve(os.Stdin, os.Stdout))
}
