package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/id01t/bookforge/internal/config"
	"github.com/id01t/bookforge/internal/history"
)

// HistoryCommand inspects recorded generations from the command line.
type HistoryCommand struct {
	ID     uint
	Limit  int
	Offset int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand() *HistoryCommand {
	return &HistoryCommand{}
}

// ParseFlags parses command line flags
func (cmd *HistoryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "id", 0, "Show the full entry with this ID")
	fs.IntVar(&cmd.Limit, "limit", 20, "Number of entries to list")
	fs.IntVar(&cmd.Offset, "offset", 0, "Listing offset")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s history [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List recorded generations, or show one entry in full.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.ID = uint(id)

	return nil
}

// Run executes the history command
func (cmd *HistoryCommand) Run() error {
	cfg := config.NewConfig()

	store, err := history.NewStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	if cmd.ID != 0 {
		entry, err := store.Get(cmd.ID)
		if err != nil {
			return err
		}
		fmt.Printf("ID:       %d\n", entry.ID)
		fmt.Printf("Created:  %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider: %s", entry.Provider)
		if entry.Model != "" {
			fmt.Printf(" (%s)", entry.Model)
		}
		fmt.Println()
		fmt.Printf("Prompt:\n%s\n\n", entry.Prompt)
		fmt.Printf("Output:\n%s\n", entry.Output)
		return nil
	}

	summaries, total, err := store.List(cmd.Limit, cmd.Offset)
	if err != nil {
		return err
	}

	fmt.Printf("%d entries (%d total)\n\n", len(summaries), total)
	for _, s := range summaries {
		fmt.Printf("%6d  %s  %-10s  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Provider, s.PromptExcerpt)
	}
	return nil
}
