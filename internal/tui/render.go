// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-youfone/models"
	"github.com/charmbracelet/bubbles/progress"
)

const (
	defaultWidth  = 80
	minBarWidth   = 10
	maxFieldWidth = 60
)

// RenderResult renders a data result as a usage overview, or the error box
// for a failed result.
func RenderResult(result models.DataResult, width int) string {
	if result.Failed() {
		return renderError(result.Error)
	}
	return renderSnapshot(result.Snapshot, width)
}

func renderError(message string) string {
	content := errorStyle.Render("Could not fetch account data") + "\n\n" + humanizeError(message)
	return errorBoxStyle.Render(content)
}

func renderSnapshot(snapshot *models.AccountSnapshot, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	customerID := ""
	if id, ok := snapshot.Customer.ID(); ok {
		customerID = formatScalar(id)
	}
	b.WriteString(labelStyle.Render("Customer"))
	b.WriteString(valueOrNA(customerID))
	b.WriteString("\n")

	if len(snapshot.SimInfo) == 0 {
		b.WriteString("\nNo SIM-only lines found.")
		return renderPage("YOUFONE ACCOUNT", b.String(), "")
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth(width)),
	)

	for _, info := range snapshot.SimInfo {
		b.WriteString("\n")
		b.WriteString(lineStyle.Render("Line " + valueOrNA(info.Options.MSISDN())))
		b.WriteString("\n")

		for _, field := range scalarFields(info.AbonnementInfo) {
			b.WriteString("  ")
			b.WriteString(fitText(field, maxFieldWidth))
			b.WriteString("\n")
		}

		for _, usage := range info.Usage {
			b.WriteString(renderUsage(bar, usage))
			b.WriteString("\n")
		}

		if len(info.Usage) > 0 {
			fmt.Fprintf(&b, "  %d days remaining\n", info.Usage[0].RemainingDays)
		}
	}

	return renderPage("YOUFONE ACCOUNT", strings.TrimRight(b.String(), "\n"), "")
}

func renderUsage(bar progress.Model, usage models.UsageSnapshot) string {
	label := labelStyle.Render(valueOrNA(usage.Type))
	if usage.IsUnlimited {
		return "  " + label + "unlimited"
	}

	return fmt.Sprintf("  %s%s %s / %s %s (%s%%)",
		label,
		bar.ViewAs(clampPercent(usage.Percentage)/100),
		formatNumber(usage.LeftSideData),
		formatNumber(usage.RightSideData),
		usage.Units,
		formatNumber(usage.Percentage),
	)
}

func barWidth(width int) int {
	w := width - 50
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
