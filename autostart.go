package kernel

// autostartEntry is one registered autostart program.
type autostartEntry struct {
	program  ProgramPointer
	priority Priority
}

// autostartRegistry is the module-wide list of autostart program
// pointers, built at program-init time (spec.md §6). Registration order
// is observable: InitScheduler execs them in exactly this order.
var autostartRegistry []autostartEntry

// RegisterAutostart appends a program to the autostart list, in call
// order. Intended to be called from package-level init() functions, the
// same way the teacher registers its opcode handlers (ops_ctrl.go's
// registerNOP/registerSTOP/... from an init()). spec.md describes the
// underlying mechanism as a linked list built by prepending each entry
// at compile-time-constructor time; the net observable contract it
// actually requires is that InitScheduler execs programs "in
// registration order" (spec.md §6), so RegisterAutostart appends
// directly rather than reproducing the prepend-then-reverse-walk a
// linker-constructor implementation would need.
func RegisterAutostart(program ProgramPointer, priority Priority) {
	autostartRegistry = append(autostartRegistry, autostartEntry{program, priority})
}

// resetAutostartRegistry clears the registry; exposed only to tests so
// each test can start from an empty registry instead of accumulating
// entries across the package's test suite.
func resetAutostartRegistry() {
	autostartRegistry = nil
}
