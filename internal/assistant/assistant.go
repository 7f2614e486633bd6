package assistant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/username/assistant-bot/internal/birthdays"
	"github.com/username/assistant-bot/internal/contacts"
	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// Settings configures the interactive loop
type Settings struct {
	Greeting string
	Prompt   string
	// Today supplies the reference date for the birthdays report.
	// Defaults to dateutil.Today.
	Today func() time.Time
}

// Assistant dispatches text commands against an address book
type Assistant struct {
	book      *contacts.AddressBook
	scheduler *birthdays.Scheduler
	settings  Settings
	logger    *zap.Logger
}

// New creates a new assistant
func New(book *contacts.AddressBook, scheduler *birthdays.Scheduler, settings Settings, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Today == nil {
		settings.Today = dateutil.Today
	}
	return &Assistant{
		book:      book,
		scheduler: scheduler,
		settings:  settings,
		logger:    logger,
	}
}

func (a *Assistant) today() time.Time {
	return dateutil.StartOfDay(a.settings.Today())
}

// Handle executes one input line and returns its single reply.
// quit is true after close or exit.
func (a *Assistant) Handle(line string) (reply string, quit bool) {
	name, args := ParseInput(line)

	cmd, ok := commands[name]
	if !ok {
		a.logger.Debug("Unknown command", zap.String("command", name))
		return replyInvalidCommand, false
	}

	if cmd.args >= 0 && len(args) != cmd.args {
		return a.describeError(name, &ArityError{Command: name, Usage: cmd.usage}), false
	}

	reply, err := cmd.run(a, args)
	if err != nil {
		return a.describeError(name, err), false
	}

	a.logger.Debug("Command handled",
		zap.String("command", name),
		zap.Int("args", len(args)))

	return reply, cmd.quit
}

// describeError turns a handler error into its one-line reply
func (a *Assistant) describeError(command string, err error) string {
	switch {
	case errors.Is(err, contacts.ErrValidation),
		errors.Is(err, contacts.ErrNotFound),
		errors.Is(err, ErrArity):
		a.logger.Info("Command rejected",
			zap.String("command", command),
			zap.Error(err))
		return err.Error()
	default:
		a.logger.Error("Command failed",
			zap.String("command", command),
			zap.Error(err))
		return fmt.Sprintf("Command failed: %v", err)
	}
}

// Run reads commands from in and writes one reply per command to out until
// close/exit, end of input or context cancellation. Cancellation also
// interrupts a wait for the next line.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if a.settings.Greeting != "" {
		if _, err := fmt.Fprintln(out, a.settings.Greeting); err != nil {
			return fmt.Errorf("failed to write greeting: %w", err)
		}
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if a.settings.Prompt != "" {
			if _, err := fmt.Fprint(out, a.settings.Prompt); err != nil {
				return fmt.Errorf("failed to write prompt: %w", err)
			}
		}

		var line string
		select {
		case <-ctx.Done():
			a.logger.Info("Session interrupted", zap.Error(ctx.Err()))
			return ctx.Err()

		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if a.settings.Prompt != "" {
					if _, err := fmt.Fprintln(out); err != nil {
						return fmt.Errorf("failed to write reply: %w", err)
					}
				}
				a.logger.Info("Input closed")
				return nil
			}
			line = l
		}

		reply, quit := a.Handle(line)
		if _, err := fmt.Fprintln(out, reply); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}

		if quit {
			a.logger.Info("Session finished", zap.Int("contacts", a.book.Len()))
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. lines is closed at end of input, after the scan error (or nil)
// is sent on errc. The goroutine stops early once done is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
