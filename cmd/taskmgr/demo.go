package main

import (
	"log"
	"time"

	"github.com/avrkern/taskkernel"
	"github.com/avrkern/taskkernel/internal/luaproc"
)

// registerDemoProcesses registers the three autostart programs cmd/taskmgr
// ships: a blinker and a counter written as ordinary Go closures, and a
// third authored as a Lua script through internal/luaproc, so the demo
// exercises both ways of supplying a kernel.ProgramPointer.
func registerDemoProcesses() {
	kernel.RegisterAutostart(blinkerProcess, 3)
	kernel.RegisterAutostart(counterProcess, 2)

	lua, err := luaproc.Compile("ticker.lua", luaTickerScript)
	if err != nil {
		log.Fatalf("taskmgr: compiling demo lua process: %v", err)
	}
	kernel.RegisterAutostart(lua, 2)
}

func blinkerProcess() {
	on := false
	for {
		on = !on
		log.Printf("[blinker] %v", on)
		time.Sleep(500 * time.Millisecond)
	}
}

func counterProcess() {
	n := 0
	for {
		n++
		log.Printf("[counter] %d", n)
		time.Sleep(300 * time.Millisecond)
	}
}

const luaTickerScript = `
n = 0
while true do
  n = n + 1
  print("[lua-ticker] " .. n)
  sleep(400)
  yield()
end
`
