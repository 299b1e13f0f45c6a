package grid

import (
	"log"

	"github.com/gridlab/cartesian/hooking"
)

// MutationLogger is a hook that prints every successful mutation of the grid
// it is attached to.
type MutationLogger struct {
	hooking.LogHookBase
}

// NewMutationLogger returns a MutationLogger which writes into the logger.
func NewMutationLogger(logger *log.Logger) *MutationLogger {
	l := new(MutationLogger)
	l.Logger = logger
	return l
}

// Func writes the mutation information into the logger.
func (l *MutationLogger) Func(ctx hooking.HookCtx) {
	name := ""
	if named, ok := ctx.Domain.(Named); ok {
		name = named.Name()
	}

	switch ctx.Pos {
	case HookPosGridAdd:
		l.Printf("%s, add %v at %v", name, ctx.Item, ctx.Detail)
	case HookPosGridRemove:
		l.Printf("%s, remove %v at %v", name, ctx.Item, ctx.Detail)
	case HookPosGridClear:
		l.Printf("%s, clear", name)
	case HookPosGridResize:
		l.Printf("%s, resize %v to %v", name, ctx.Detail, ctx.Item)
	}
}
