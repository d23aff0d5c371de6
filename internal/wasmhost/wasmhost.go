// Package wasmhost runs the WASI build of golox inside the wazero runtime.
//
// It is used to check that the WebAssembly build produces the same output
// as the native one, and by hosts that want to embed the front end without
// linking it.
//
//	r, err := wasmhost.Load(ctx, "golox.wasm")
//	if err != nil { ... }
//	defer r.Close(ctx)
//	resp, code, err := r.Run(ctx, wire.Request{Source: "1 + 2"})
package wasmhost

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/sandrolain/golox/internal/wire"
)

// Runner holds a compiled golox WASI module. Each Run instantiates a fresh
// copy of it, so a Runner may be shared by multiple goroutines.
type Runner struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// New compiles the given WASI binary.
func New(ctx context.Context, binary []byte) (*Runner, error) {
	rt := wazero.NewRuntime(ctx)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(err, "instantiating WASI")
	}

	compiled, err := rt.CompileModule(ctx, binary)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(err, "compiling module")
	}

	return &Runner{runtime: rt, compiled: compiled}, nil
}

// Load reads and compiles the WASI binary at path.
func Load(ctx context.Context, path string) (*Runner, error) {
	binary, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return New(ctx, binary)
}

// Run sends req to a new instance of the module and decodes its response.
// The returned code is the module's exit code.
func (r *Runner) Run(ctx context.Context, req wire.Request) (wire.Response, int, error) {
	var resp wire.Response

	payload, err := json.Marshal(req)
	if err != nil {
		return resp, 0, errors.Wrap(err, "encoding request")
	}

	var stdout, stderr bytes.Buffer
	cfg := wazero.NewModuleConfig().
		WithName("").
		WithArgs("golox").
		WithStdin(bytes.NewReader(payload)).
		WithStdout(&stdout).
		WithStderr(&stderr)

	code := 0
	mod, err := r.runtime.InstantiateModule(ctx, r.compiled, cfg)
	if err != nil {
		var exitErr *sys.ExitError
		if !errors.As(err, &exitErr) {
			return resp, 0, errors.Wrapf(err, "running module: %s", stderr.String())
		}
		code = int(exitErr.ExitCode())
	} else if mod != nil {
		_ = mod.Close(ctx)
	}

	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return resp, code, errors.Wrapf(err, "decoding response %q", stdout.String())
	}
	return resp, code, nil
}

// Close releases the runtime and everything compiled in it.
func (r *Runner) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}
