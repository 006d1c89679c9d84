// Package cmd implements stunpack's console commands.
package cmd

import (
	"fmt"

	"github.com/smira/commander"

	ctx "github.com/dsi/stunpack/context"
)

// context is the shared resources every command dispatches through,
// set up once per process by Run.
var context *ctx.AppContext

// Run runs cmd starting from the root command with cmdArgs, optionally
// initializing the shared context first.
func Run(cmd *commander.Command, cmdArgs []string, initContext bool) (returnCode int) {
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := r.(*ctx.FatalError)
			if !ok {
				panic(r)
			}
			fmt.Println("ERROR:", fatal.Message)
			returnCode = fatal.ReturnCode
		}
	}()

	flags, args, err := cmd.ParseFlags(cmdArgs)
	if err != nil {
		ctx.Fatal(err)
	}

	if initContext {
		context, err = ctx.NewContext(flags)
		if err != nil {
			ctx.Fatal(err)
		}
		defer context.Shutdown()
	}

	context.UpdateFlags(flags)

	if err := cmd.Dispatch(args); err != nil {
		ctx.Fatal(err)
	}

	return 0
}
