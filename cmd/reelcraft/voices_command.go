package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// prebuiltVoices lists the prebuilt voices the speech service accepts, with
// the service's own character descriptions.
var prebuiltVoices = [][2]string{
	{"Achernar", "Soft"},
	{"Aoede", "Breezy"},
	{"Autonoe", "Bright"},
	{"Callirrhoe", "Easy-going"},
	{"Despina", "Smooth"},
	{"Erinome", "Clear"},
	{"Gacrux", "Mature"},
	{"Kore", "Firm"},
	{"Laomedeia", "Upbeat"},
	{"Leda", "Youthful"},
	{"Sulafat", "Warm"},
	{"Vindemiatrix", "Gentle"},
	{"Zephyr", "Bright"},
}

func newVoicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "voices",
		Short:       "List prebuilt narration voices",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(prebuiltVoices))
			for _, voice := range prebuiltVoices {
				rows = append(rows, []string{voice[0], voice[1]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Voice", "Character"}, rows))
			return nil
		},
	}
}
