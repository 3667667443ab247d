package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dense-ml/dense/tensor"
)

const version = "v0.1.0"

// NewRootCmd builds the dense command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dense",
		Short:         "Dense N-dimensional tensor engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRandCmd())
	root.AddCommand(newSeqCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("dense %s\n", version)
		},
	}
}

func newRandCmd() *cobra.Command {
	var (
		shapeArg string
		seed     uint64
		uniform  bool
	)

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print a random tensor drawn from a seeded source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := parseShape(shapeArg)
			if err != nil {
				return err
			}
			src := tensor.NewSource(seed)
			var t *tensor.Tensor[float64]
			if uniform {
				t, err = tensor.Rand[float64](shape, src)
			} else {
				t, err = tensor.Randn[float64](shape, src)
			}
			if err != nil {
				return err
			}
			render(t)
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeArg, "shape", "3,3", "comma-separated axis sizes")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random source seed")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "draw from [0,1) instead of the standard normal")
	return cmd
}

func newSeqCmd() *cobra.Command {
	var (
		shapeArg string
		sumAxis  int
	)

	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Print an index-sequence tensor and an axis sum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := parseShape(shapeArg)
			if err != nil {
				return err
			}
			t, err := tensor.Sequence[float64](shape)
			if err != nil {
				return err
			}
			render(t)

			sum, err := t.Sum(sumAxis)
			if err != nil {
				return err
			}
			if sumAxis == tensor.ReduceAll {
				v, err := sum.Item()
				if err != nil {
					return err
				}
				fmt.Printf("sum: %g\n", v)
			} else {
				fmt.Printf("sum over axis %d: shape %v data %v\n", sumAxis, sum.Shape(), sum.Data())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeArg, "shape", "2,3", "comma-separated axis sizes")
	cmd.Flags().IntVar(&sumAxis, "sum-axis", tensor.ReduceAll, "axis to sum over (-1 for the whole tensor)")
	return cmd
}

func parseShape(arg string) (tensor.Shape, error) {
	if strings.TrimSpace(arg) == "" {
		return tensor.Shape{}, nil
	}
	parts := strings.Split(arg, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", arg, err)
		}
		shape = append(shape, dim)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// render prints 2-D tensors as a table and everything else flat.
func render(t *tensor.Tensor[float64]) {
	fmt.Printf("%s\n", t)
	shape := t.Shape()
	if len(shape) != 2 {
		fmt.Println(t.Data())
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	header := make([]string, shape[1])
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	table.SetHeader(header)
	data := t.Data()
	for i := 0; i < shape[0]; i++ {
		row := make([]string, shape[1])
		for j := 0; j < shape[1]; j++ {
			row[j] = strconv.FormatFloat(data[i*shape[1]+j], 'g', 4, 64)
		}
		table.Append(row)
	}
	table.Render()
}
