// Package luaproc lets a process body be authored as a small Lua script
// instead of a compiled Go function, using github.com/yuin/gopher-lua.
// A compiled script satisfies kernel.ProgramPointer exactly like any
// other entry point; Exec cannot tell the two apart.
package luaproc

import (
	"log"
	"runtime"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// yieldToScheduler hands the OS thread back to the Go runtime's
// scheduler, standing in for the interrupt-driven preemption a real
// Lua-scripted process would receive from the timer ISR.
func yieldToScheduler() {
	runtime.Gosched()
}

// Compile parses src once and returns a ProgramPointer (a zero-argument,
// never-returning function, per spec.md's process-entry-point contract)
// that runs the script's body to completion and then re-runs it forever,
// the same "process body never returns" convention every Go-authored
// autostart program follows; only when a run fails does it log the error
// and return. A script calls the host-provided yield()
// function to cooperatively hand control back between iterations of its
// own loop, the way a real process would be interrupted between
// scheduler ticks; yield() here simply calls runtime.Gosched so a script
// never monopolizes the goroutine a dispatch hook (cmd/taskmgr) runs it
// on.
//
// Compile fails fast (at registration time, not at the first dispatch)
// if src does not parse, so a malformed autostart script is caught
// before InitScheduler ever execs it.
func Compile(name, src string) (func(), error) {
	proto, err := compileProto(name, src)
	if err != nil {
		return nil, err
	}

	return func() {
		for {
			if err := runOnce(proto); err != nil {
				log.Printf("[luaproc] %s: %v", name, err)
				return
			}
		}
	}, nil
}

func compileProto(name, src string) (*lua.FunctionProto, error) {
	L := lua.NewState()
	defer L.Close()

	chunk, err := L.LoadString(src)
	if err != nil {
		return nil, err
	}
	return chunk.Proto, nil
}

func runOnce(proto *lua.FunctionProto) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("yield", L.NewFunction(func(L *lua.LState) int {
		yieldToScheduler()
		return 0
	}))
	L.SetGlobal("sleep", L.NewFunction(func(L *lua.LState) int {
		ms := L.CheckInt64(1)
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return 0
	}))

	fn := L.NewFunctionFromProto(proto)
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}
