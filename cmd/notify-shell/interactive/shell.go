// Package interactive provides the interactive command-line interface
// for notify-shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chzyer/readline"

	"github.com/lintwatch/notify-go/pkg/binding"
	"github.com/lintwatch/notify-go/pkg/notification"
)

// Terminal wraps the readline instance shared by logging and the shell.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal creates the readline terminal.
func NewTerminal() (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "notify> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline prompt.
func (t *Terminal) Stdout() io.Writer {
	return t.rl.Stdout()
}

// Stderr returns a writer that coordinates with the readline prompt.
// Use this for log output to avoid interfering with the prompt.
func (t *Terminal) Stderr() io.Writer {
	return t.rl.Stderr()
}

// Deps are the components the shell drives.
type Deps struct {
	Manager    *notification.Manager
	Transport  *SimTransport
	Finder     *binding.Finder
	Dispatcher *notification.Dispatcher
}

// Shell handles interactive mode for notify-shell.
type Shell struct {
	deps Deps
	out  io.Writer
	term *Terminal
}

// New creates a shell reading commands from term.
func New(term *Terminal, deps Deps) *Shell {
	s := NewWithWriter(term.Stdout(), deps)
	s.term = term
	return s
}

// NewWithWriter creates a shell that writes its output to out. Commands are
// fed through Exec.
func NewWithWriter(out io.Writer, deps Deps) *Shell {
	s := &Shell{deps: deps, out: out}
	if deps.Dispatcher != nil {
		deps.Dispatcher.OnNotification(s.printNotification)
	}
	return s
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.term.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.term.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if s.Exec(ctx, line) {
			cancel()
			return
		}
	}
}

// Exec runs one command line. It returns true when the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "subscribe", "sub":
		s.cmdSubscribe(ctx, args)

	case "unsubscribe", "unsub":
		s.cmdUnsubscribe(ctx, args)

	case "status", "s":
		s.cmdStatus()

	case "count":
		fmt.Fprintf(s.out, "%d\n", s.deps.Manager.SubscriberCount())

	case "bindings", "b":
		s.cmdBindings()

	case "notify", "n":
		s.cmdNotify(args)

	case "fail":
		s.cmdFail(args)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Notification Shell Commands:
  Subscriptions:
    subscribe <project>...    - Subscribe local projects to notifications
    unsubscribe <project>...  - Unsubscribe local projects
    status                    - Show open subscriptions and their modules
    count                     - Show number of open transport subscriptions
    bindings                  - List project bindings

  Simulation:
    notify <projectKey> <msg> - Push a server notification
    fail on|off               - Make transport calls fail

  General:
    help                      - Show this help
    quit                      - Exit shell`)
}

// localProject is a project known to the shell by name.
type localProject string

func (p localProject) Name() string { return string(p) }

func (s *Shell) cmdSubscribe(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: subscribe <project>...")
		return
	}
	for _, name := range args {
		if err := s.deps.Manager.Subscribe(ctx, localProject(name)); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "Subscribed %s (%d open)\n", name, s.deps.Manager.SubscriberCount())
	}
}

func (s *Shell) cmdUnsubscribe(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: unsubscribe <project>...")
		return
	}
	for _, name := range args {
		if err := s.deps.Manager.Unsubscribe(ctx, localProject(name)); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "Unsubscribed %s (%d open)\n", name, s.deps.Manager.SubscriberCount())
	}
}

func (s *Shell) cmdStatus() {
	keys := s.deps.Manager.ProjectKeys()
	if len(keys) == 0 {
		fmt.Fprintln(s.out, "No open subscriptions")
		return
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT KEY\tMODULES")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", key, strings.Join(s.deps.Manager.ModuleKeys(key), ", "))
	}
	tw.Flush()
}

func (s *Shell) cmdBindings() {
	if s.deps.Finder == nil || s.deps.Finder.Projects() == 0 {
		fmt.Fprintln(s.out, "No bindings loaded")
		return
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tPROJECT KEY\tMODULE KEY\tSUBSCRIBED")
	for _, b := range s.deps.Finder.Bindings() {
		subscribed := "no"
		if s.deps.Manager.IsSubscribed(localProject(b.Project)) {
			subscribed = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Project, b.ProjectKey, b.ModuleKey, subscribed)
	}
	tw.Flush()
}

func (s *Shell) cmdNotify(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: notify <projectKey> <message>")
		return
	}

	n := notification.Notification{
		Category:   "SIMULATED",
		Message:    strings.Join(args[1:], " "),
		ProjectKey: args[0],
		Time:       time.Now(),
	}
	if !s.deps.Transport.Push(n) {
		fmt.Fprintf(s.out, "No open subscription for %s\n", args[0])
	}
}

func (s *Shell) cmdFail(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintln(s.out, "Usage: fail on|off")
		return
	}
	s.deps.Transport.SetFailing(args[0] == "on")
	fmt.Fprintf(s.out, "Transport failures %s\n", args[0])
}

func (s *Shell) printNotification(n notification.Notification) {
	fmt.Fprintf(s.out, "[%s] %s: %s\n", n.Category, n.ProjectKey, n.Message)
}
