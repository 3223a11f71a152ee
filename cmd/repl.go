package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"reldb/client"
	"reldb/database"
	"reldb/executor"
	"reldb/storage"
)

var (
	replLoadPath string
	replSavePath string
	replCompress bool
	replConnect  string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive SQL shell, local or against a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replConnect != "" {
			c := client.New(replConnect)
			if err := c.Ping(); err != nil {
				return fmt.Errorf("cannot reach %s: %w", replConnect, err)
			}
			runRemoteShell(c, os.Stdin)
			return nil
		}

		db := database.New()
		if replLoadPath != "" {
			loaded, err := storage.Load(replLoadPath)
			if err != nil {
				return err
			}
			db = loaded
			fmt.Printf("Loaded %d table(s) from %s\n", len(db.TableNames()), replLoadPath)
		}

		runShell(db, os.Stdin)

		if replSavePath != "" {
			save := storage.Save
			if replCompress {
				save = storage.SaveCompressed
			}
			if err := save(db, replSavePath); err != nil {
				return err
			}
			fmt.Printf("Saved database to %s\n", replSavePath)
		}
		return nil
	},
}

func init() {
	replCmd.Flags().StringVar(&replLoadPath, "load", envString("RELDB_DATA", ""), "snapshot file to load on startup")
	replCmd.Flags().StringVar(&replSavePath, "save", "", "snapshot file to write on exit")
	replCmd.Flags().BoolVar(&replCompress, "compress", false, "snappy-compress the snapshot written on exit")
	replCmd.Flags().StringVar(&replConnect, "connect", envString("RELDB_SERVER", ""), "URL of a running server; statements run remotely and --load/--save are ignored")
}

// newLineScanner sizes the scanner for statements well past bufio's 64 KiB
// default line cap, so a long INSERT does not silently end the shell.
func newLineScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return scanner
}

func runShell(db *database.Database, in io.Reader) {
	prompt := color.New(color.FgCyan, color.Bold)
	errOut := color.New(color.FgRed)

	fmt.Println("Welcome to reldb. Type 'exit' or 'quit' to leave.")
	scanner := newLineScanner(in)
	for {
		prompt.Print("reldb> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			fmt.Println("Goodbye.")
			return
		}

		result, err := executor.Execute(db, input)
		if err != nil {
			errOut.Println(err)
		}
		if result != nil {
			fmt.Println(result.Format())
		}
	}
}

// runRemoteShell drives a running server instead of a local engine. Besides
// SQL it understands 'tables' and 'checksum' as shell commands.
func runRemoteShell(c *client.Client, in io.Reader) {
	prompt := color.New(color.FgCyan, color.Bold)
	errOut := color.New(color.FgRed)

	fmt.Println("Connected. Type 'exit' or 'quit' to leave, 'tables' to list tables, 'checksum' to print the state checksum.")
	scanner := newLineScanner(in)
	for {
		prompt.Print("reldb> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit"):
			fmt.Println("Goodbye.")
			return
		case strings.EqualFold(input, "tables"):
			tables, err := c.Tables()
			if err != nil {
				errOut.Println(err)
				continue
			}
			for _, name := range tables {
				fmt.Println(name)
			}
			continue
		case strings.EqualFold(input, "checksum"):
			sum, err := c.Checksum()
			if err != nil {
				errOut.Println(err)
				continue
			}
			fmt.Println(sum)
			continue
		}

		result, err := c.Execute(input)
		if err != nil {
			errOut.Println(err)
		}
		if result != nil {
			fmt.Println(result.Format())
		}
	}
}
