package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var (
	runInputs    []string
	runInputFile string
	runRawOut    string
	runPreview   bool
	runDataOnly  bool
)

var runCmd = &cobra.Command{
	Use:   "run [block-id]",
	Short: "Invoke a block",
	Long: `Invoke a block with the given inputs and print its output event.

Inputs are given as key=value pairs. A value starting with @ is read from
a file, which is how media uploads receive their payload. JSON and YAML
input files are merged first; -i pairs override them.`,
	Example: `  gcpblocks run storage.buckets.list
  gcpblocks run storage.objects.get -i bucket=my-bucket -i object=a.txt -i alt=media --raw-out a.txt
  gcpblocks run storage.objects.insert -i bucket=my-bucket -i name=a.txt -i media=@a.txt
  gcpblocks run resourcemanager.projects.setIamPolicy --input-file policy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runInputs, "input", "i", nil, "input as key=value (repeatable)")
	runCmd.Flags().StringVar(&runInputFile, "input-file", "", "JSON or YAML file of inputs")
	runCmd.Flags().StringVar(&runRawOut, "raw-out", "", "write non-JSON response bytes to this file")
	runCmd.Flags().BoolVar(&runPreview, "preview", false, "print the request instead of sending it")
	runCmd.Flags().BoolVar(&runDataOnly, "data", false, "print only the response data")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if invoker == nil {
		return errors.New("invoker not configured")
	}

	inputs, err := collectInputs(runInputFile, runInputs)
	if err != nil {
		return err
	}

	if runPreview {
		req, err := invoker.Preview(cmd.Context(), args[0], inputs)
		if err != nil {
			return err
		}
		return printRequest(cmd, req)
	}

	event, err := invoker.Invoke(cmd.Context(), args[0], inputs)
	if err != nil {
		if apiErr, ok := domain.AsAPIError(err); ok && len(apiErr.Body) > 0 {
			cmd.PrintErrln(string(apiErr.Body))
		}
		return err
	}

	if runRawOut != "" && event.Raw != nil {
		if err := os.WriteFile(runRawOut, event.Raw, 0600); err != nil {
			return fmt.Errorf("writing raw output: %w", err)
		}
		cmd.PrintErrf("Wrote %d bytes to %s\n", len(event.Raw), runRawOut)
		event.Raw = nil
	}

	if runDataOnly {
		if event.Raw != nil {
			_, err := cmd.OutOrStdout().Write(event.Raw)
			return err
		}
		return printJSON(cmd, event.Data)
	}
	return printJSON(cmd, event)
}

// collectInputs merges the input file with key=value pairs.
func collectInputs(file string, pairs []string) (map[string]any, error) {
	inputs := map[string]any{}

	if file != "" {
		fromFile, err := readInputFile(file)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			inputs[k] = v
		}
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: input %q must be key=value", domain.ErrInvalidInput, pair)
		}
		if path, isFile := strings.CutPrefix(value, "@"); isFile {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading input %s: %w", key, err)
			}
			inputs[key] = data
			continue
		}
		inputs[key] = value
	}

	return inputs, nil
}

func readInputFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	var inputs map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &inputs)
	default:
		err = json.Unmarshal(data, &inputs)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidInput, path, err)
	}
	return inputs, nil
}

func printRequest(cmd *cobra.Command, req *domain.APIRequest) error {
	cmd.Printf("%s %s\n", req.Method, req.URL)
	keys := make([]string, 0, len(req.Header))
	for k := range req.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("%s: %s\n", k, strings.Join(req.Header[k], ", "))
	}
	if len(req.Body) == 0 {
		return nil
	}
	cmd.Println()
	if req.ContentType == "application/json" {
		cmd.Println(string(req.Body))
	} else {
		cmd.Printf("[%d bytes of %s]\n", len(req.Body), req.ContentType)
	}
	return nil
}
