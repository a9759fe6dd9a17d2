// Package storefront is a line-oriented terminal front end for a session.
//
// It renders the catalog, delivery and payment screens and turns typed
// commands into session.Controller calls, one command at a time.
package storefront

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/session"
	"github.com/rs/zerolog"
)

// Payment holds the values shown on the payment screen. They are not interpreted.
type Payment struct {
	QRImage string
	UPIID   string
}

// DeliveryForm is collected on the delivery screen and only echoed back.
type DeliveryForm struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Notes    string
}

type Terminal struct {
	ctrl    *session.Controller
	out     io.Writer
	title   string
	payment Payment
	form    DeliveryForm
	log     zerolog.Logger
}

type Option func(*Terminal)

func WithPayment(p Payment) Option {
	return func(t *Terminal) {
		t.payment = p
	}
}

func WithTitle(title string) Option {
	return func(t *Terminal) {
		t.title = title
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(t *Terminal) {
		t.log = log
	}
}

func New(ctrl *session.Controller, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		ctrl:  ctrl,
		out:   out,
		title: "Smart Gadgets",
		log:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Run renders the current screen and executes commands read from in until the
// input ends, "quit" is entered or ctx is done.
func (t *Terminal) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)

	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	t.Render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("scanner.Scan: %w", err)
				}
				return nil
			}

			// select picks at random when both are ready
			if err := ctx.Err(); err != nil {
				return err
			}

			if quit := t.Execute(line); quit {
				return nil
			}
		}
	}
}

// Execute runs one command line and re-renders. It reports whether the user quit.
func (t *Terminal) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	t.log.Debug().Str("command", cmd).Stringer("stage", t.ctrl.Stage()).Msg("command received")

	switch cmd {
	case "quit", "exit":
		fmt.Fprintln(t.out, "Bye!")
		return true
	case "help":
		t.help()
		return false
	}

	var handled bool
	switch t.ctrl.Stage() {
	case domain.StageCatalog:
		handled = t.catalogCommand(cmd, arg)
	case domain.StageDelivery:
		handled = t.deliveryCommand(cmd, arg)
	case domain.StagePayment:
		handled = t.paymentCommand(cmd)
	}

	if !handled {
		fmt.Fprintf(t.out, "Unknown command %q, type \"help\" for the list of commands.\n", line)
		return false
	}

	t.Render()
	return false
}

func (t *Terminal) catalogCommand(cmd, arg string) bool {
	switch cmd {
	case "add", "+":
		id, ok := t.productID(arg)
		if ok && !t.ctrl.Increment(id) {
			fmt.Fprintf(t.out, "No product with id %d.\n", id)
		}
	case "remove", "-":
		id, ok := t.productID(arg)
		if ok {
			t.ctrl.Decrement(id)
		}
	case "checkout":
		t.transition(t.ctrl.GoToDelivery())
	default:
		return false
	}
	return true
}

func (t *Terminal) deliveryCommand(cmd, arg string) bool {
	switch cmd {
	case "name":
		t.form.FullName = arg
	case "email":
		t.form.Email = arg
	case "phone":
		t.form.Phone = arg
	case "address":
		t.form.Address = arg
	case "notes":
		t.form.Notes = arg
	case "pay":
		t.transition(t.ctrl.GoToPayment())
	case "back":
		t.transition(t.ctrl.BackToShop())
	default:
		return false
	}
	return true
}

func (t *Terminal) paymentCommand(cmd string) bool {
	switch cmd {
	case "back":
		t.transition(t.ctrl.BackFromPayment())
	case "complete":
		receipt := t.ctrl.CompleteOrder()
		t.form = DeliveryForm{}
		fmt.Fprintf(t.out, "%s (order %s, %d items, %s)\n",
			receipt.Notice, receipt.OrderID, receipt.ItemCount, receipt.Total)
	default:
		return false
	}
	return true
}

func (t *Terminal) productID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(t.out, "Expected a product id, got %q.\n", arg)
		return 0, false
	}
	return id, true
}

func (t *Terminal) transition(err error) {
	switch {
	case err == nil:
	case errors.Is(err, session.ErrEmptyCart):
		fmt.Fprintln(t.out, "Your cart is empty, add a product first.")
	default:
		t.log.Warn().Err(err).Stringer("stage", t.ctrl.Stage()).Msg("transition rejected")
	}
}

// Form returns the delivery details typed so far.
func (t *Terminal) Form() DeliveryForm {
	return t.form
}

func (t *Terminal) help() {
	fmt.Fprintln(t.out, "Commands:")
	switch t.ctrl.Stage() {
	case domain.StageCatalog:
		fmt.Fprintln(t.out, "  add <id>       add one unit to the cart")
		fmt.Fprintln(t.out, "  remove <id>    remove one unit from the cart")
		fmt.Fprintln(t.out, "  checkout       proceed to delivery")
	case domain.StageDelivery:
		fmt.Fprintln(t.out, "  name|email|phone|address|notes <text>")
		fmt.Fprintln(t.out, "  pay            proceed to payment")
		fmt.Fprintln(t.out, "  back           back to shop")
	case domain.StagePayment:
		fmt.Fprintln(t.out, "  complete       complete the order")
		fmt.Fprintln(t.out, "  back           back to delivery")
	}
	fmt.Fprintln(t.out, "  help | quit")
}
