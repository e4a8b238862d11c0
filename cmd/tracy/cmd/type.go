package cmd

import (
	"fmt"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/tangzhangming/tracy/internal/i18n"
	"github.com/tangzhangming/tracy/internal/types"
)

// typeJSON 类型描述符的 JSON 形式
type typeJSON struct {
	Type         string `json:"type"`
	Kind         string `json:"kind"`
	Name         string `json:"name,omitempty"`
	Bits         int    `json:"bits,omitempty"`
	PointerLevel int    `json:"pointer_level"`
}

func newTypeCmd(o *options) *cobra.Command {
	var (
		pointer int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "type <ident>",
		Short: i18n.T(i18n.CmdTypeShort),
		Long: `Builds the type descriptor of a type identifier. Identifiers starting
with "enum " become enum descriptors, everything else a record.

Examples:
  tracy type "struct task_struct" --pointer 1
  tracy type "enum color"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pointer < 0 {
				return fmt.Errorf("pointer level must not be negative: %d", pointer)
			}

			// 允许不加引号输入 struct task_struct
			ident := strings.Join(args, " ")
			builder := o.cfg.TypeBuilder()

			var t types.SizedType
			if pointer > 0 {
				t = builder.IdentToRecord(ident, pointer)
			} else {
				t = builder.IdentToSizedType(ident)
			}

			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
				return nil
			}

			leaf := t
			for leaf.IsPointer() {
				leaf = leaf.Pointee()
			}
			data, err := json.Marshal(typeJSON{
				Type:         t.String(),
				Kind:         leaf.Kind.String(),
				Name:         leaf.Name,
				Bits:         leaf.Bits,
				PointerLevel: t.PointerLevel(),
			})
			if err != nil {
				return fmt.Errorf("failed to encode type: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().IntVar(&pointer, "pointer", 0, "pointer level of a record type")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
