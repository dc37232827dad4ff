// Command taskmgr is the demo/harness for package kernel: it wires a
// real Scheduler to a display backend, autostarts three demo processes,
// runs the interactive task-manager UI (see taskmanager.go), and drives
// the scheduler ISR from a time.Ticker standing in for the hardware
// compare-match timer.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/avrkern/taskkernel"
	"github.com/avrkern/taskkernel/internal/display"
	"github.com/avrkern/taskkernel/internal/termdisplay"
	"golang.org/x/sync/errgroup"
)

// panel is the union of kernel.Display, kernel.ButtonInput, and
// navigator that both backends satisfy.
type panel interface {
	kernel.Display
	kernel.ButtonInput
	navigator
}

func main() {
	headless := flag.Bool("headless", false, "use a raw-terminal display instead of the ebiten LCD panel")
	tickInterval := flag.Duration("tick", 16*time.Millisecond, "scheduler ISR period")
	flag.Parse()

	var (
		p       panel
		ebitenP *display.Panel
		termP   *termdisplay.Terminal
	)
	if *headless {
		termP = termdisplay.New()
		if err := termP.Start(); err != nil {
			log.Fatalf("taskmgr: %v", err)
		}
		defer termP.Stop()
		p = termP
	} else {
		ebitenP = display.New()
		p = ebitenP
	}

	l := newLine()
	sink := &kernel.OSError{Line: l, Display: p, Input: p}
	sched := kernel.NewScheduler(l, sink)

	kernel.SetDispatchHook(func(program kernel.ProgramPointer) {
		go program()
	})

	registerDemoProcesses()

	if !kernel.ConfirmReset(kernel.ResetPowerOn, p, p) {
		log.Println("taskmgr: boot aborted at reset confirmation")
		return
	}

	sched.InitScheduler()
	for pid := kernel.ProcessId(1); pid < kernel.ProcessCount; pid++ {
		if sched.GetSlot(pid).State != kernel.Unused {
			sched.DispatchProcess(pid)
		}
	}
	l.ArmScheduler()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if ebitenP != nil {
		g.Go(ebitenP.Run)
	}

	g.Go(func() error { return runTaskManager(ctx, sched, p) })

	g.Go(func() error {
		ticker := time.NewTicker(*tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if l.schedulerArmed() {
					sched.Tick()
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Printf("taskmgr: %v", err)
	}
}
