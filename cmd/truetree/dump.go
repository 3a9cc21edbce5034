package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/g-m-twostay/truetree/Trees"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var (
		pretty, asStrings bool
		remove            []string
	)
	cmd := &cobra.Command{
		Use:   "dump [values...]",
		Short: "Insert values in order, remove some, and print the tree as nested arrays",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asStrings {
				return dumpTree(cmd.OutOrStdout(), Trees.WrapAll(args...), Trees.WrapAll(remove...), pretty)
			}
			add, err := parseInts(args)
			if err != nil {
				return err
			}
			rm, err := parseInts(remove)
			if err != nil {
				return err
			}
			return dumpTree(cmd.OutOrStdout(), Trees.WrapAll(add...), Trees.WrapAll(rm...), pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "one element per line")
	cmd.Flags().BoolVar(&asStrings, "strings", false, "treat values as strings instead of integers")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "values to remove after inserting")
	return cmd
}

func dumpTree[T Trees.Value[T]](w io.Writer, add, rm []T, pretty bool) error {
	tree := Trees.From(add...)
	for _, v := range rm {
		if _, err := tree.Remove(v); err != nil {
			return err
		}
	}
	if err := tree.Print(w, pretty); err != nil {
		return fmt.Errorf("printing tree: %w", err)
	}
	return nil
}

func parseInts(args []string) ([]int64, error) {
	r := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		r[i] = v
	}
	return r, nil
}
