package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/cheggaaa/pb"
	"github.com/wsxiaoys/terminal/color"
)

const (
	codePrint = iota
	codePrintStdErr
	codeProgress
	codeHideProgress
	codeStop
	codeFlush
	codeBarEnabled
	codeBarDisabled
)

type printTask struct {
	code    int
	message string
	reply   chan bool
}

// Progress is a progress displaying subroutine: a single background
// worker goroutine that serializes every status line and progress-bar
// tick so batch mode's many workers never tear each other's output.
type Progress struct {
	stopped  chan bool
	queue    chan printTask
	bar      *pb.ProgressBar
	barShown bool
}

// NewProgress creates a new progress instance.
func NewProgress() *Progress {
	return &Progress{
		stopped: make(chan bool),
		queue:   make(chan printTask, 100),
	}
}

// Start makes progress start its work.
func (p *Progress) Start() {
	go p.worker()
}

// Shutdown shuts down progress display.
func (p *Progress) Shutdown() {
	p.ShutdownBar()
	p.queue <- printTask{code: codeStop}
	<-p.stopped
}

// Flush waits for all queued messages to be displayed.
func (p *Progress) Flush() {
	ch := make(chan bool)
	p.queue <- printTask{code: codeFlush, reply: ch}
	<-ch
}

// InitBar starts a progress bar tracking count units, shown as bytes
// when isBytes is set. Batch mode uses it to count the files of a
// manifest as they finish.
func (p *Progress) InitBar(count int64, isBytes bool) {
	if p.bar != nil {
		panic("bar already initialized")
	}
	if RunningOnTerminal() {
		p.bar = pb.New(0)
		p.bar.Total = count
		p.bar.NotPrint = true
		p.bar.Callback = func(out string) {
			p.queue <- printTask{code: codeProgress, message: out}
		}

		if isBytes {
			p.bar.SetUnits(pb.U_BYTES)
			p.bar.ShowSpeed = true
		}

		p.queue <- printTask{code: codeBarEnabled}
		p.bar.Start()
	}
}

// ShutdownBar stops the progress bar and hides it.
func (p *Progress) ShutdownBar() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.queue <- printTask{code: codeBarDisabled}
	p.bar = nil
	p.queue <- printTask{code: codeHideProgress}
}

// Write implements io.Writer so the progress bar can be ticked directly
// by wrapping a file being decoded (bytes written = bytes decoded).
func (p *Progress) Write(s []byte) (int, error) {
	if p.bar != nil {
		p.bar.Add(len(s))
	}
	return len(s), nil
}

// AddBar increments the progress bar's current count.
func (p *Progress) AddBar(count int) {
	if p.bar != nil {
		p.bar.Add(count)
	}
}

// Printf prints a message without disturbing the progress bar.
func (p *Progress) Printf(msg string, a ...interface{}) {
	p.queue <- printTask{code: codePrint, message: fmt.Sprintf(msg, a...)}
}

// PrintfStdErr prints a message to stderr without disturbing the
// progress bar.
func (p *Progress) PrintfStdErr(msg string, a ...interface{}) {
	p.queue <- printTask{code: codePrintStdErr, message: fmt.Sprintf(msg, a...)}
}

// ColoredPrintf prints a colored, newline-terminated message.
func (p *Progress) ColoredPrintf(msg string, a ...interface{}) {
	if RunningOnTerminal() {
		p.queue <- printTask{code: codePrint, message: color.Sprintf(msg, a...) + "\n"}
	} else {
		p.Printf(stripColorMarks(msg)+"\n", a...)
	}
}

// Status reports a single success line for one decode stage.
func (p *Progress) Status(format string, a ...interface{}) {
	p.ColoredPrintf("@g"+format+"@!", a...)
}

// Fail reports a single failure line for one decode stage.
func (p *Progress) Fail(format string, a ...interface{}) {
	p.ColoredPrintf("@r"+format+"@!", a...)
}

// stripColorMarks removes @-color markup from msg when output isn't a
// terminal, the same scan ColoredPrintf's non-terminal branch always did.
func stripColorMarks(msg string) string {
	var inColorMark, inCurly bool
	return strings.Map(func(r rune) rune {
		if inColorMark {
			if inCurly {
				if r == '}' {
					inCurly = false
					inColorMark = false
					return -1
				}
			} else {
				if r == '{' {
					inCurly = true
				} else if r == '@' {
					return '@'
				} else {
					inColorMark = false
				}
			}
			return -1
		}

		if r == '@' {
			inColorMark = true
			return -1
		}

		return r
	}, msg)
}

func (p *Progress) worker() {
	hasBar := false

	for {
		task := <-p.queue
		switch task.code {
		case codeBarEnabled:
			hasBar = true
		case codeBarDisabled:
			hasBar = false
		case codePrint:
			if p.barShown {
				fmt.Print("\r\033[2K")
				p.barShown = false
			}
			fmt.Print(task.message)
		case codePrintStdErr:
			if p.barShown {
				fmt.Print("\r\033[2K")
				p.barShown = false
			}
			fmt.Fprint(os.Stderr, task.message)
		case codeProgress:
			if hasBar {
				fmt.Print("\r" + task.message)
				p.barShown = true
			}
		case codeHideProgress:
			if p.barShown {
				fmt.Print("\r\033[2K")
				p.barShown = false
			}
		case codeFlush:
			task.reply <- true
		case codeStop:
			p.stopped <- true
			return
		}
	}
}
