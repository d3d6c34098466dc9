package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"ghost-storage-gcs/core/ghost"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	saveName string
	saveType string
	dirFlag  string
	outFlag  string
)

// saveCmd uploads a local file
var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Upload a local file and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()

		name := saveName
		if name == "" {
			name = filepath.Base(args[0])
		}
		contentType := saveType
		if contentType == "" {
			contentType = mime.TypeByExtension(filepath.Ext(name))
		}

		url, err := store.Save(cmd.Context(), ghost.Asset{Path: args[0], Name: name, Type: contentType})
		if err != nil {
			return err
		}
		logg.Debug("Saved", zap.String("url", url))
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

// existsCmd checks for an object
var existsCmd = &cobra.Command{
	Use:   "exists [filename]",
	Short: "Check whether an object exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()

		ok, err := store.Exists(cmd.Context(), args[0], dirFlag)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

// readCmd downloads an object
var readCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Download an object to stdout or --out",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()

		data, err := store.Read(cmd.Context(), ghost.ReadOptions{Path: args[0]})
		if err != nil {
			return err
		}
		if outFlag != "" {
			return os.WriteFile(outFlag, data, 0o644)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// deleteCmd removes an object
var deleteCmd = &cobra.Command{
	Use:   "delete [filename]",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()

		if _, err := store.Delete(cmd.Context(), args[0], dirFlag); err != nil {
			return err
		}
		logg.Info("Deleted", zap.String("filename", args[0]), zap.String("dir", dirFlag))
		return nil
	},
}

// urlCmd prints the base URL derived from the configuration
var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the base URL assets are served from",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()

		fmt.Fprintln(cmd.OutOrStdout(), store.BaseURL())
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveName, "name", "", "file name to store under (defaults to the local name)")
	saveCmd.Flags().StringVar(&saveType, "type", "", "content type (defaults to one guessed from the extension)")
	existsCmd.Flags().StringVar(&dirFlag, "dir", "", "target directory")
	deleteCmd.Flags().StringVar(&dirFlag, "dir", "", "target directory")
	readCmd.Flags().StringVarP(&outFlag, "out", "o", "", "write to file instead of stdout")

	RootCmd.AddCommand(saveCmd, existsCmd, readCmd, deleteCmd, urlCmd)
}
