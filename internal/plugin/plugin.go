// Package plugin hosts the optional init.lua user script.
//
// The script runs once at startup in a sandboxed Lua state with a
// small editor API. It may define hook functions the editor calls on
// lifecycle events:
//
//	function on_open(path)  ... end
//	function on_save(path)  ... end
//
// and may call editor.status(msg) and editor.log(msg). A missing
// script is not an error; hook errors surface as status messages and
// are never fatal.
package plugin

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// API is what the host exposes to Lua.
type API interface {
	// Status shows a transient message on the message bar.
	Status(msg string)
	// Log writes to the editor log.
	Log(msg string)
}

// Host owns the Lua state for the user script. A nil host is valid
// and all hook dispatches on it are no-ops.
type Host struct {
	state *lua.LState
}

// Load runs the script at path. A missing file yields a nil host.
func Load(path string, api API) (*Host, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open a restricted library set: no io, no os.
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}

	registerAPI(L, api)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("running %s: %w", path, err)
	}
	return &Host{state: L}, nil
}

func registerAPI(L *lua.LState, api API) {
	editor := L.NewTable()
	L.SetField(editor, "status", L.NewFunction(func(L *lua.LState) int {
		if api != nil {
			api.Status(L.CheckString(1))
		}
		return 0
	}))
	L.SetField(editor, "log", L.NewFunction(func(L *lua.LState) int {
		if api != nil {
			api.Log(L.CheckString(1))
		}
		return 0
	}))
	L.SetGlobal("editor", editor)
}

// OnOpen dispatches the on_open hook, if the script defined one.
func (h *Host) OnOpen(path string) error {
	return h.call("on_open", path)
}

// OnSave dispatches the on_save hook, if the script defined one.
func (h *Host) OnSave(path string) error {
	return h.call("on_save", path)
}

func (h *Host) call(hook, arg string) error {
	if h == nil || h.state == nil {
		return nil
	}
	fn := h.state.GetGlobal(hook)
	if fn == lua.LNil {
		return nil
	}
	if err := h.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LString(arg)); err != nil {
		return fmt.Errorf("%s hook: %w", hook, err)
	}
	return nil
}

// Close releases the Lua state.
func (h *Host) Close() {
	if h == nil || h.state == nil {
		return
	}
	h.state.Close()
	h.state = nil
}
