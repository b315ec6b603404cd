package client

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/handlers/grpc/v1alpha1"
)

var (
	selectionFile string
	outputDir     string
	toStdout      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a map from a JSON selection",
	Long: `Send a JSON selection document to the server and write the returned map.
The file is named after the map title unless --stdout is given.`,
	Example: `  mapgen client generate --file selection.json
  cat selection.json | mapgen client generate --file - --stdout`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&selectionFile, "file", "f", "", "JSON selection document, - for stdin")
	generateCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "directory the map is written to")
	generateCmd.Flags().BoolVar(&toStdout, "stdout", false, "print the map instead of writing a file")
	_ = generateCmd.MarkFlagRequired("file")
}

func readSelection(cmd *cobra.Command) ([]byte, error) {
	if selectionFile == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(selectionFile)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	body, err := readSelection(cmd)
	if err != nil {
		return fmt.Errorf("failed to read selection: %w", err)
	}

	client, cleanup, err := createMapClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var header metadata.MD
	resp, err := client.GenerateMap(ctx, wrapperspb.Bytes(body), grpc.Header(&header))
	if err != nil {
		return describeError(errors.FromGRPCError(err))
	}

	if toStdout {
		_, err = fmt.Fprint(cmd.OutOrStdout(), resp.GetValue())
		return err
	}

	name := "map.map"
	if values := header.Get(v1alpha1.HeaderMapFilename); len(values) > 0 {
		name = values[0]
	}
	path := filepath.Join(outputDir, filepath.Base(name))
	if err := os.WriteFile(path, []byte(resp.GetValue()), 0o600); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}

	cmd.Printf("Wrote %s\n", path)
	return nil
}

func describeError(err error) error {
	fields := errors.GetFieldErrors(err)
	if len(fields) == 0 {
		return fmt.Errorf("failed to generate map: %w", err)
	}

	msg := errors.GetMessage(err)
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		for _, p := range fields[field] {
			msg += fmt.Sprintf("\n  %s: %s", field, p)
		}
	}
	return errors.New(errors.GetCode(err), msg)
}
