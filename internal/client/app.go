package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	defaultListLimit   = 10
	defaultEventsLimit = 100
)

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"version":      {"version", (*App).version},
	"owner":        {"owner", (*App).owner},
	"transfer":     {"transfer <address>", (*App).transfer},
	"accept":       {"accept", (*App).accept},
	"renounce":     {"renounce", (*App).renounce},
	"fee":          {"fee", (*App).fee},
	"set-fee":      {"set-fee <amount>", (*App).setFee},
	"fee-pool":     {"fee-pool", (*App).feePool},
	"subscribe":    {"subscribe [payment]", (*App).subscribe},
	"subscription": {"subscription", (*App).subscription},
	"store":        {"store <name> <description> <secret>", (*App).store},
	"update":       {"update <id> <name> <description> <secret>", (*App).update},
	"list":         {"list [page] [limit]", (*App).list},
	"remove":       {"remove <id>", (*App).remove},
	"events":       {"events [from] [limit]", (*App).events},
	"browse":       {"browse", (*App).browse},
}

// Browser is an interactive view of the caller's records.
type Browser interface {
	Browse(ctx context.Context) error
}

// App runs one client command against a vault server.
type App struct {
	vault   adapter.VaultClient
	sealer  crypto.Sealer
	browser Browser
	out     io.Writer
	logger  *logger.Logger
}

// Option configures an [App].
type Option func(*App)

// WithBrowser enables the browse command.
func WithBrowser(b Browser) Option {
	return func(a *App) {
		a.browser = b
	}
}

// NewApp constructs an [App]. sealer may be nil; commands that store or
// list record values then fail with [ErrNoPassphrase].
func NewApp(vault adapter.VaultClient, sealer crypto.Sealer, out io.Writer, logger *logger.Logger, opts ...Option) *App {
	a := &App{vault: vault, sealer: sealer, out: out, logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w, usage: %s", err, cmd.usage)
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

// Usage prints the list of commands.
func (a *App) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
}

func (a *App) version(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, err := a.vault.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) owner(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	o, err := a.vault.Ownership(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "owner: %s\n", o.Owner)
	if o.PendingOwner != "" {
		fmt.Fprintf(a.out, "pending owner: %s\n", o.PendingOwner)
	}
	return nil
}

func (a *App) transfer(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	newOwner, err := models.ParseAddress(args[0])
	if err != nil {
		return err
	}
	if err = a.vault.RequestOwnershipTransfer(ctx, newOwner); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "transfer to %s requested\n", models.FormatAddress(newOwner))
	return nil
}

func (a *App) accept(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := a.vault.AcceptOwnership(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ownership accepted")
	return nil
}

func (a *App) renounce(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return a.vault.RenounceOwnership(ctx)
}

func (a *App) fee(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	fee, err := a.vault.Fee(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, fee)
	return nil
}

func (a *App) setFee(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	fee, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	if err = a.vault.ChangeFee(ctx, fee); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "fee set to %d\n", fee)
	return nil
}

func (a *App) feePool(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	pool, err := a.vault.FeePool(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, pool)
	return nil
}

func (a *App) subscribe(ctx context.Context, args []string) error {
	var payment models.Amount
	switch len(args) {
	case 0:
	case 1:
		var err error
		if payment, err = parseAmount(args[0]); err != nil {
			return err
		}
	default:
		return ErrUsage
	}

	sub, err := a.vault.Subscribe(ctx, payment)
	if err != nil {
		return err
	}
	a.printSubscription(sub)
	return nil
}

func (a *App) subscription(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sub, err := a.vault.Subscription(ctx)
	if err != nil {
		return err
	}
	a.printSubscription(sub)
	return nil
}

func (a *App) printSubscription(sub models.SubscriptionResponse) {
	fmt.Fprintf(a.out, "subscribed: %t\n", sub.Subscribed)
	if sub.ExpiresAt != nil {
		fmt.Fprintf(a.out, "expires at: %s\n", sub.ExpiresAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(a.out, "trial used: %t\n", sub.HasUsedTrial)
}

func (a *App) store(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	return a.storeOrUpdate(ctx, models.ZeroRecordID, args[0], args[1], args[2])
}

func (a *App) update(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	id, err := models.ParseRecordID(args[0])
	if err != nil {
		return err
	}
	if models.IsZeroRecordID(id) {
		return ErrUsage
	}
	return a.storeOrUpdate(ctx, id, args[1], args[2], args[3])
}

func (a *App) storeOrUpdate(ctx context.Context, id models.RecordID, name, description, secret string) error {
	if a.sealer == nil {
		return ErrNoPassphrase
	}
	value, err := a.sealer.Seal([]byte(secret))
	if err != nil {
		return fmt.Errorf("seal value: %w", err)
	}

	stored, err := a.vault.StoreOrUpdate(ctx, id, models.Record{
		Name:        []byte(name),
		Description: []byte(description),
		Value:       value,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, models.FormatRecordID(stored))
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return ErrUsage
	}
	if a.sealer == nil {
		return ErrNoPassphrase
	}

	var (
		page  uint64
		limit = defaultListLimit
		err   error
	)
	if len(args) > 0 {
		if page, err = strconv.ParseUint(args[0], 10, 64); err != nil {
			return fmt.Errorf("%w: page: %w", ErrUsage, err)
		}
	}
	if len(args) > 1 {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("%w: limit: %w", ErrUsage, err)
		}
	}

	records, err := a.vault.GetStoredPasswords(ctx, page, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tSECRET")
	for _, r := range records {
		secret, err := a.sealer.Open(r.Value)
		if err != nil {
			a.logger.Warn().Err(err).Str("id", models.FormatRecordID(r.ID)).Msg("cannot open record value")
			secret = []byte("<sealed>")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", models.FormatRecordID(r.ID), r.Name, r.Description, secret)
	}
	return w.Flush()
}

func (a *App) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := models.ParseRecordID(args[0])
	if err != nil {
		return err
	}
	if err = a.vault.RemoveData(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed %s\n", models.FormatRecordID(id))
	return nil
}

func (a *App) events(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return ErrUsage
	}

	var (
		from  int64
		limit = defaultEventsLimit
		err   error
	)
	if len(args) > 0 {
		if from, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("%w: from: %w", ErrUsage, err)
		}
	}
	if len(args) > 1 {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("%w: limit: %w", ErrUsage, err)
		}
	}

	events, err := a.vault.Events(ctx, from, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tTIME\tKIND\tACTOR\tDETAILS")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.Seq, e.CreatedAt.UTC().Format(time.RFC3339), e.Kind, e.Actor, formatDetails(e.Details))
	}
	return w.Flush()
}

func (a *App) browse(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if a.browser == nil {
		return ErrNoBrowser
	}
	if a.sealer == nil {
		return ErrNoPassphrase
	}
	return a.browser.Browse(ctx)
}

func parseAmount(s string) (models.Amount, error) {
	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount: %w", ErrUsage, err)
	}
	return amount, nil
}

func formatDetails(details map[string]string) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+details[k])
	}
	return strings.Join(parts, " ")
}
