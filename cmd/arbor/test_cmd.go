package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/dataset/csv"
	"github.com/arborlab/arbor/dataset/yaml"
)

type testCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	treeInput     string
	treeName      string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Measure the accuracy of a trained tree",
		Long:  `Classify every sample of a labeled set with a trained tree and report the fraction it labels correctly`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			metadata, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			testTable, err := csv.ReadTableFromFilePath(config.dataInput, metadata.Features, metadata.Label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against a table with %d samples...", testTable.Count())
			var hits int
			for i := 0; i < testTable.Count(); i++ {
				label, err := t.Predict(testTable.Row(i))
				if err != nil {
					fmt.Fprintf(os.Stderr, "classifying sample %d: %v\n", i, err)
					os.Exit(5)
				}
				if label == testTable.Label(i) {
					hits++
				}
			}
			accuracy := float64(hits) / float64(testTable.Count())
			fmt.Printf("%f success rate for %d samples\n", accuracy, testTable.Count())
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with labeled samples to test the tree against (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file describing the feature columns and the label column of the input data (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON tree file or a redis URL from which the tree will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "default", "name under which the tree is stored when the tree input is a redis URL")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
