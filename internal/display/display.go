// Package display renders a live status line while a plan executes.
package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Status represents the current execution status.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
	StatusFailed
)

var statusColors = map[Status]*color.Color{
	StatusRunning:   color.New(color.FgYellow),
	StatusCompleted: color.New(color.FgGreen),
	StatusFailed:    color.New(color.FgRed),
}

func (s Status) String() string {
	var name string
	switch s {
	case StatusIdle:
		name = "Idle"
	case StatusRunning:
		name = "Running"
	case StatusCompleted:
		name = "Completed"
	case StatusFailed:
		name = "Failed"
	default:
		name = "Unknown"
	}
	if c, ok := statusColors[s]; ok {
		return c.Sprint(name)
	}
	return name
}

// State holds what the status line shows.
type State struct {
	TaskNum    int
	TotalTasks int
	TaskName   string
	TaskID     string
	Status     Status
	TaskStart  time.Time
}

// Display manages the terminal status line. One display serves one plan run.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	state    State
	done     chan struct{}
	wg       sync.WaitGroup
	active   bool
	lastLine string
}

// New creates a display writing to the given writer.
func New(w io.Writer) *Display {
	return &Display{
		writer: w,
		done:   make(chan struct{}),
	}
}

// Start begins redrawing the status line once per second.
func (d *Display) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active {
		return
	}
	d.active = true
	d.state.TaskStart = time.Now()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		d.render()
		for {
			select {
			case <-ticker.C:
				d.render()
			case <-d.done:
				return
			}
		}
	}()
}

// Stop halts the redraw loop and clears the status line. Blocks until the
// redraw goroutine has exited.
func (d *Display) Stop() {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return
	}
	d.active = false
	d.mu.Unlock()

	close(d.done)
	d.wg.Wait()
	d.clearLine()
}

// UpdateTask sets the current task and restarts the per-task timer.
func (d *Display) UpdateTask(taskNum, totalTasks int, taskID, taskName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.TaskNum = taskNum
	d.state.TotalTasks = totalTasks
	d.state.TaskID = taskID
	d.state.TaskName = taskName
	d.state.TaskStart = time.Now()
}

// UpdateStatus updates the execution status.
func (d *Display) UpdateStatus(status Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Status = status
}

// render redraws the status line if it changed since the last draw.
func (d *Display) render() {
	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	line := d.formatLine(state, time.Since(state.TaskStart))

	d.mu.Lock()
	changed := line != d.lastLine
	d.lastLine = line
	d.mu.Unlock()
	if !changed {
		return
	}

	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

// formatLine creates the status line string.
func (d *Display) formatLine(state State, elapsed time.Duration) string {
	if state.TotalTasks == 0 {
		return ""
	}

	name := state.TaskName
	if len(name) > 40 {
		name = name[:37] + "..."
	}

	return fmt.Sprintf("Task %d/%d: %s │ ⏱ %s │ %s",
		state.TaskNum, state.TotalTasks, name, formatDuration(elapsed), state.Status)
}

// clearLine clears the status line.
func (d *Display) clearLine() {
	fmt.Fprintf(d.writer, "\r\033[K")
}

// PrintAbove prints a message above the status line so the redraw loop
// doesn't overwrite it.
func (d *Display) PrintAbove(format string, args ...any) {
	d.clearLine()
	fmt.Fprintf(d.writer, format+"\n", args...)
	d.render()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	s := d - m*time.Minute

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s/time.Second)
	}
	return fmt.Sprintf("%02d:%02d", m, s/time.Second)
}
