// Package cli serves the interactive contacts prompt.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"contacts/config"
	"contacts/internal/delivery"
	"contacts/internal/delivery/middleware"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	inputPrompt = ">>> "
	closePrompt = ">>> Would you like to save changes (Y/N)? "
)

type cliServer struct {
	logger     *slog.Logger
	contacts   usecase.ContactUsecase
	dispatcher *Dispatcher
	scanner    *bufio.Scanner
	out        io.Writer
	writer     ResponseWriter
	done       bool
}

// ServerParams holds dependencies for the prompt server
type ServerParams struct {
	fx.In

	Cfg      *config.Config
	Logger   *slog.Logger
	Contacts usecase.ContactUsecase
	Handler  *ContactHandler

	Input  io.Reader `name:"cliInput" optional:"true"`
	Output io.Writer `name:"cliOutput" optional:"true"`
}

// NewServer creates the prompt server reading commands from stdin
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Input == nil {
		params.Input = os.Stdin
	}
	if params.Output == nil {
		params.Output = os.Stdout
	}

	srv := &cliServer{
		logger:     params.Logger,
		contacts:   params.Contacts,
		dispatcher: NewDispatcher(),
		scanner:    bufio.NewScanner(params.Input),
		out:        params.Output,
		writer:     NewConsoleResponseWriter(params.Output),
	}

	// Command ID first so the logger middleware sees it
	srv.dispatcher.Use(
		middleware.NewCommandIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)
	srv.registerRoutes(params.Handler)

	return srv, nil
}

// registerRoutes sets up the commands in match order.
func (s *cliServer) registerRoutes(h *ContactHandler) {
	s.dispatcher.Handle("add", h.Add)
	s.dispatcher.Handle("phone add", h.AddPhone)
	s.dispatcher.Handle("phone change", h.ChangePhone)
	s.dispatcher.Handle("phone remove", h.RemovePhone)
	s.dispatcher.Handle("days to birthday", h.DaysToBirthday)
	s.dispatcher.Handle("hello", s.hello)
	s.dispatcher.Handle("change", h.Change)
	s.dispatcher.Handle("phone", h.Phone)
	s.dispatcher.Handle("show all", h.ShowAll)
	s.dispatcher.Handle("search", h.Search)
	s.dispatcher.Handle("qr", h.QR)
	s.dispatcher.Handle("import", h.Import)
	s.dispatcher.Handle("save", h.Save)
	s.dispatcher.Handle("close", s.close)
	s.dispatcher.Handle("good bye", s.close)
	s.dispatcher.Handle("exit", s.close)
}

// Serve runs the prompt loop until a close command completes, input ends or ctx is cancelled.
func (s *cliServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting contacts prompt")

	for !s.done {
		if ctx.Err() != nil {
			break
		}

		line, ok := s.readLine(inputPrompt)
		if !ok {
			break
		}

		out, err := s.dispatcher.Dispatch(ctx, line)
		if err != nil {
			s.writer.Write(domainerrors.UserMessage(err))

			continue
		}
		if out != "" {
			s.writer.Write(out)
		}
	}

	if err := s.scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	s.logger.Info("Contacts prompt finished")

	return nil
}

// hello lists every registered command keyword.
func (s *cliServer) hello(context.Context, *delivery.Command) (string, error) {
	var sb strings.Builder
	sb.WriteString("How can I help you?\nYou can choose one of the commands:")
	for _, keyword := range s.dispatcher.Keywords() {
		fmt.Fprintf(&sb, "\n  %q", keyword)
	}

	return sb.String(), nil
}

func (s *cliServer) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}

	return s.scanner.Text(), true
}

// close asks whether to save before leaving. Any answer other than Y or N
// returns to the prompt; a failed save also keeps the prompt running.
func (s *cliServer) close(ctx context.Context, _ *delivery.Command) (string, error) {
	answer, ok := s.readLine(closePrompt)
	if !ok {
		s.done = true

		return "", nil
	}

	switch strings.TrimSpace(answer) {
	case "N":
		s.done = true

		return "", nil
	case "Y":
		message, err := s.contacts.Save(ctx)
		if err != nil {
			return "", err
		}
		s.done = true

		return message, nil
	default:
		return "", domainerrors.ErrInvalidAnswer
	}
}
