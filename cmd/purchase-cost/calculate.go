package main

import (
	"strings"

	"github.com/iwvelando/purchase-cost/internal/calculation"
	"github.com/iwvelando/purchase-cost/internal/render"
	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/iwvelando/purchase-cost/pkg/fields"
	"github.com/iwvelando/purchase-cost/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fieldFlag binds a CLI flag to a calculation field name.
type fieldFlag struct {
	flag  string
	field string
	usage string
}

var progressiveFlags = []fieldFlag{
	{"qty", calculation.FieldQuantity, "quantity in units"},
	{"invoice", calculation.FieldInvoice, "invoice amount"},
	{"trade", calculation.FieldTradeDiscount, "trade discount in percent"},
	{"special", calculation.FieldSpecialDiscount, "special discount in percent"},
	{"quantity-discount", calculation.FieldQuantityDiscount, "quantity discount in percent"},
	{"packing", calculation.FieldPacking, "seller packing charge"},
	{"freight", calculation.FieldFreight, "seller freight charge"},
	{"skonto", calculation.FieldCashDiscount, "cash discount in percent"},
	{"own-freight", calculation.FieldOwnFreight, "buyer freight cost"},
	{"own-insurance", calculation.FieldOwnInsurance, "buyer insurance cost"},
	{"own-other", calculation.FieldOwnOther, "other buyer cost"},
}

var retrogradeFlags = []fieldFlag{
	{"qty", calculation.FieldQuantity, "quantity in units"},
	{"target-total", calculation.FieldTargetTotal, "target total purchase price"},
	{"target-unit", calculation.FieldTargetUnit, "target purchase price per unit, used without a target total"},
	{"own", calculation.FieldOwn, "buyer's own purchasing expenses in total"},
	{"skonto", calculation.FieldCashDiscount, "cash discount in percent"},
	{"packing", calculation.FieldPacking, "seller packing charge"},
	{"freight", calculation.FieldFreight, "seller freight charge"},
	{"trade", calculation.FieldTradeDiscount, "trade discount in percent"},
	{"special", calculation.FieldSpecialDiscount, "special discount in percent"},
	{"quantity-discount", calculation.FieldQuantityDiscount, "quantity discount in percent"},
}

// registerFieldFlags adds string flags so values such as "12,5" reach the
// parsing boundary untouched.
func registerFieldFlags(cmd *cobra.Command, defs []fieldFlag) {
	for _, def := range defs {
		cmd.Flags().String(def.flag, "", def.usage)
	}
}

// collectFields merges changed flags over the values from the configuration file.
func collectFields(cmd *cobra.Command, base fields.Fields, defs []fieldFlag) fields.Fields {
	f := make(fields.Fields, len(base)+len(defs))
	for k, v := range base {
		f[k] = v
	}
	for _, def := range defs {
		if !cmd.Flags().Changed(def.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(def.flag)
		for k := range f {
			if k != def.field && strings.EqualFold(k, def.field) {
				delete(f, k)
			}
		}
		f[def.field] = value
	}
	return f
}

func newProgressiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progressive",
		Short: "Compute the unit cost from an invoice amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op = "main.progressive"

			in := calculation.ProgressiveInputFromFields(collectFields(cmd, a.conf.Progressive, progressiveFlags))
			res := calculation.Progressive(in)
			warnings := in.Warnings()
			a.warn(op, warnings)
			a.logger.Debug("progressive calculation computed",
				zap.String("op", op),
				zap.Float64("totalCost", res.Parts.TotalCost),
				zap.Float64("unitCost", res.Parts.UnitCost),
			)

			return a.write(cmd, output.Report{
				Parts:    res.Parts,
				Diagram:  render.Progressive(res, a.formatter()),
				Warnings: warnings,
			})
		},
	}
	registerFieldFlags(cmd, progressiveFlags)
	return cmd
}

func newRetrogradeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retrograde",
		Short: "Compute the maximum invoice amount from a target cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op = "main.retrograde"

			in := calculation.RetrogradeInputFromFields(collectFields(cmd, a.conf.Retrograde, retrogradeFlags))
			res := calculation.Retrograde(in)
			warnings := in.Warnings()
			a.warn(op, warnings)
			a.logger.Debug("retrograde calculation computed",
				zap.String("op", op),
				zap.Float64("totalCost", res.Parts.TotalCost),
				zap.Float64("invoice", res.Parts.Invoice),
			)

			return a.write(cmd, output.Report{
				Parts:    res.Parts,
				Diagram:  render.Retrograde(res, a.formatter()),
				Warnings: warnings,
			})
		},
	}
	registerFieldFlags(cmd, retrogradeFlags)
	return cmd
}

func (a *app) write(cmd *cobra.Command, report output.Report) error {
	w := cmd.OutOrStdout()
	if a.conf.Output.Format == constants.OutputFormatJSON {
		return output.JSONFormat(w, report)
	}
	return output.PrettyFormat(w, report.Diagram)
}
