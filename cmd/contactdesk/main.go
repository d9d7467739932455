package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"contactdesk/internal/client"
	"contactdesk/internal/config"
	"contactdesk/internal/roster"
	"contactdesk/internal/tui"
	"contactdesk/internal/validate"
	"contactdesk/pkg/models"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contactdesk.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Path to client config file." default:"contactdesk.yaml"`
	Server  string           `help:"Server base URL (overrides config)."`

	Tui  TuiCmd  `cmd:"" default:"1" help:"Open the interactive contact manager."`
	List ListCmd `cmd:"" help:"Print all contacts."`
	Add  AddCmd  `cmd:"" help:"Add a contact."`
	Rm   RmCmd   `cmd:"" help:"Delete a contact by id."`
}

// gateway builds a client from the config file plus flag overrides.
func (cli *CLI) gateway(notify client.Notifier) (*client.Client, error) {
	cfg, err := config.LoadClient(cli.Config)
	if err != nil {
		return nil, err
	}
	serverURL := cfg.ServerURL
	if cli.Server != "" {
		serverURL = cli.Server
	}
	return client.New(serverURL, cfg.Timeout, notify), nil
}

// TuiCmd opens the interactive form/list TUI.
type TuiCmd struct{}

func (c *TuiCmd) Run(cli *CLI) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("tui requires a terminal; use 'contactdesk list' for plain output")
	}

	notices := tui.NewNoticeLog()
	gw, err := cli.gateway(notices)
	if err != nil {
		return err
	}

	m := tui.NewModel(roster.NewList(gw), gw, notices)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// ListCmd prints the contact list, newest first.
type ListCmd struct{}

func (c *ListCmd) Run(cli *CLI) error {
	gw, err := cli.gateway(client.WriterNotifier{W: os.Stderr})
	if err != nil {
		return err
	}

	contacts, err := gw.ListContacts(context.Background())
	if err != nil {
		return err
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	for _, contact := range contacts {
		fmt.Printf("%s\t%s\t%s\t%s\n", contact.ID, contact.Name, contact.Email, contact.Phone)
	}
	return nil
}

// AddCmd creates a contact after local validation.
type AddCmd struct {
	Name    string `help:"Contact name." required:""`
	Email   string `help:"Contact email." required:""`
	Phone   string `help:"Contact phone number." required:""`
	Message string `help:"Optional message."`
}

func (c *AddCmd) Run(cli *CLI) error {
	draft := models.Draft{Name: c.Name, Email: c.Email, Phone: c.Phone, Message: c.Message}
	if errs := validate.Draft(draft); !validate.Valid(errs) {
		for field, msg := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		return fmt.Errorf("validation failed")
	}

	gw, err := cli.gateway(client.WriterNotifier{W: os.Stdout})
	if err != nil {
		return err
	}

	contact, err := gw.CreateContact(context.Background(), draft)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", contact.ID)
	return nil
}

// RmCmd deletes a contact by id.
type RmCmd struct {
	ID string `arg:"" help:"Contact id to delete."`
}

func (c *RmCmd) Run(cli *CLI) error {
	gw, err := cli.gateway(client.WriterNotifier{W: os.Stdout})
	if err != nil {
		return err
	}
	return gw.DeleteContact(context.Background(), c.ID)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactdesk"),
		kong.Description("Terminal contact manager."),
		kong.Vars{"version": fmt.Sprintf("%s %s %s", version, commit, date)},
		kong.Bind(&cli),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
