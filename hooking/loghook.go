package hooking

import "log"

// A LogHook is a hook that records information about the operations of the
// domain it is attached to.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks.
type LogHookBase struct {
	*log.Logger
}
