// Package main provides the vcardbox command line interface.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spachava753/vcardbox/internal/config"
	"github.com/spachava753/vcardbox/mailbox"
	"github.com/spachava753/vcardbox/sqlitestore"
	"github.com/spachava753/vcardbox/vcf"
)

var rootCmd = &cobra.Command{
	Use:   "vcardbox",
	Short: "vcardbox - normalize, store, and exchange contact cards",
	Long: `vcardbox imports vCard 2.1/3.0 files into normalized contact records,
stores them in a local SQLite database, and exchanges cards through a mail
account (fetch attachments over IMAP, share cards over SMTP).`,
	SilenceUsage: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  runInit,
}

var importCmd = &cobra.Command{
	Use:   "import [file...]",
	Short: "Import vCard files into the contact database",
	Long:  `Import decodes each vCard file (or stdin when the file is "-") and stores every non-empty contact. Ignorable cards are skipped.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored contacts",
	RunE:  runList,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch vCard attachments from the mail account and store them",
	RunE:  runFetch,
}

var shareCmd = &cobra.Command{
	Use:   "share <file.vcf>",
	Short: "Email a vCard file as an attachment",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

var (
	configPath string
	dbPath     string
	variant    string

	fetchMailbox string
	fetchLimit   int

	shareTo      []string
	shareSubject string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "override database path")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "override locale variant (default, japan, europe, japan_naming)")

	fetchCmd.Flags().StringVar(&fetchMailbox, "mailbox", "", "mailbox to scan (default INBOX)")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 50, "maximum messages to scan")

	shareCmd.Flags().StringSliceVar(&shareTo, "to", nil, "recipient addresses")
	shareCmd.Flags().StringVar(&shareSubject, "subject", "", "message subject")
	shareCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(initCmd, importCmd, listCmd, fetchCmd, shareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}
	if variant != "" {
		cfg.Variant = variant
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*sqlitestore.Store, error) {
	if dir := filepath.Dir(cfg.Database); dir != "." && cfg.Database != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	return sqlitestore.Open(cfg.Database)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	stored, skipped := 0, 0
	for _, arg := range args {
		var reader io.Reader
		if arg == "-" {
			reader = cmd.InOrStdin()
		} else {
			file, err := os.Open(arg)
			if err != nil {
				return err
			}
			reader = file
			defer file.Close()
		}

		contacts, err := vcf.DecodeAll(reader, cfg.CardConfig())
		if err != nil {
			return fmt.Errorf("decoding %s: %w", arg, err)
		}
		for _, contact := range contacts {
			if contact.IsIgnorable() {
				skipped++
				continue
			}
			if err := store.Store(cmd.Context(), contact); err != nil {
				return err
			}
			stored++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "stored %d contact(s), skipped %d empty\n", stored, skipped)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no contacts stored")
		return nil
	}
	for _, record := range records {
		line := fmt.Sprintf("%d\t%s", record.ID, record.DisplayName)
		if record.AccountName != "" {
			line += "\t(" + record.AccountName + ")"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	out, err := mailbox.Fetch(mailbox.FetchInput{
		Mailbox: fetchMailbox,
		Limit:   fetchLimit,
		Config:  cfg.CardConfig(),
	})
	if err != nil {
		return err
	}

	stored := 0
	for _, contact := range out.Contacts {
		if contact.IsIgnorable() {
			continue
		}
		if err := store.Store(cmd.Context(), contact); err != nil {
			return err
		}
		stored++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "scanned %d message(s), stored %d contact(s)\n", out.Scanned, stored)
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	out, err := mailbox.Share(mailbox.ShareInput{
		To:       shareTo,
		Subject:  shareSubject,
		CardData: data,
		Filename: filepath.Base(args[0]),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sent %s\n", out.MessageID)
	return nil
}
