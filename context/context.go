// Package context provides the single shared entry point to the
// resources every command needs: configuration, logging and the
// colored status/progress reporter.
package context

import (
	gocontext "context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/dsi/stunpack/console"
	"github.com/dsi/stunpack/utils"
)

// AppContext is the common context shared by every cmd subcommand.
type AppContext struct {
	sync.Mutex

	gocontext.Context

	flags, globalFlags *flag.FlagSet
	configLoaded       bool

	progress *console.Progress
}

// FatalError is the type panicked with to abort execution with a
// non-zero exit code and a meaningful explanation, caught by cmd.Run's
// top-level recover.
type FatalError struct {
	ReturnCode int
	Message    string
}

// Fatal panics with a FatalError built from err, aborting the current
// command. Usage errors (wrong argument count, bad flags) map to exit
// code 2; every other failure maps to exit code 1.
func Fatal(err error) {
	returnCode := 1
	if err == commander.ErrFlagError || err == commander.ErrCommandError {
		returnCode = 2
	}
	panic(&FatalError{ReturnCode: returnCode, Message: err.Error()})
}

// Config loads (on first call) and returns the current configuration.
func (ctx *AppContext) Config() *utils.ConfigStructure {
	ctx.Lock()
	defer ctx.Unlock()

	return ctx.config()
}

func (ctx *AppContext) config() *utils.ConfigStructure {
	if !ctx.configLoaded {
		configLocation := ""
		if f := ctx.globalFlags.Lookup("config"); f != nil {
			configLocation = f.Value.String()
		}

		var err error
		if configLocation != "" {
			err = utils.LoadConfig(configLocation, &utils.Config)
			if err != nil {
				Fatal(fmt.Errorf("error loading config file %s: %s", configLocation, err))
			}
		} else {
			for _, loc := range []string{
				filepath.Join(os.Getenv("HOME"), ".stunpack.conf"),
				"/etc/stunpack.conf",
			} {
				err = utils.LoadConfig(loc, &utils.Config)
				if err == nil {
					break
				}
				if !os.IsNotExist(err) {
					Fatal(fmt.Errorf("error loading config file %s: %s", loc, err))
				}
			}
			// A missing default config file is not an error: the
			// built-in utils.Config defaults carry the program.
		}

		if f := ctx.globalFlags.Lookup("log-level"); f != nil && f.Value.String() != "" {
			utils.Config.LogLevel = f.Value.String()
		}
		if f := ctx.globalFlags.Lookup("log-format"); f != nil && f.Value.String() != "" {
			utils.Config.LogFormat = f.Value.String()
		}

		ctx.configLoaded = true
		utils.SetupLogger(&utils.Config)
	}

	return &utils.Config
}

// Progress returns the shared progress/status reporter, creating and
// starting it on first use.
func (ctx *AppContext) Progress() *console.Progress {
	ctx.Lock()
	defer ctx.Unlock()

	if ctx.progress == nil {
		ctx.progress = console.NewProgress()
		ctx.progress.Start()
	}

	return ctx.progress
}

// UpdateFlags sets the context's internal copy of the dispatched
// command's flags.
func (ctx *AppContext) UpdateFlags(flags *flag.FlagSet) {
	ctx.Lock()
	defer ctx.Unlock()

	ctx.flags = flags
}

// Flags returns the current command's flags.
func (ctx *AppContext) Flags() *flag.FlagSet {
	ctx.Lock()
	defer ctx.Unlock()

	return ctx.flags
}

// GlobalFlags returns the flags common to every command.
func (ctx *AppContext) GlobalFlags() *flag.FlagSet {
	ctx.Lock()
	defer ctx.Unlock()

	return ctx.globalFlags
}

// Shutdown releases every resource the context opened.
func (ctx *AppContext) Shutdown() {
	ctx.Lock()
	defer ctx.Unlock()

	if ctx.progress != nil {
		ctx.progress.Shutdown()
		ctx.progress = nil
	}
}

// NewContext initializes a context from the root command's global flags.
func NewContext(flags *flag.FlagSet) (*AppContext, error) {
	ctx := &AppContext{
		flags:       flags,
		globalFlags: flags,
		Context:     gocontext.TODO(),
	}

	return ctx, nil
}
