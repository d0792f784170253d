package view

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderText writes a page as a terminal table. Highlighted rows are marked
// with an arrow, founder payouts with a star.
func RenderText(w io.Writer, p PageView) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(p.Info)
	t.AppendHeader(table.Row{"", "Block", "Hash", "Reward", "Miner", "Time", "Txs"})
	for _, b := range p.Blocks {
		mark := ""
		if b.Highlighted {
			mark = ">"
		}
		if b.Placeholder {
			t.AppendRow(table.Row{mark, b.Label, "(" + b.Problem + ")", b.Reward, b.Recipient, b.Time, "-"})
			continue
		}
		miner := b.Recipient
		if b.Founder {
			miner = "* " + miner
		}
		t.AppendRow(table.Row{mark, b.Label, shortHash(b.Hash), b.Reward, miner, b.Time, b.Transactions})
		if b.GenesisMessage != "" {
			t.AppendRow(table.Row{"", "", "\"" + b.GenesisMessage + "\"", "", "", "", ""})
		}
	}

	footer := ""
	if p.HasPrevious {
		footer += "[p] newer  "
	}
	if p.HasNext {
		footer += "[n] older"
	}
	if footer != "" {
		t.AppendFooter(table.Row{"", footer})
	}

	style := table.StyleLight
	style.Options.DrawBorder = false
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.Render()
}

// RenderStats writes the counters as a two-column table.
func RenderStats(w io.Writer, s StatsView) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Latest block", s.Latest},
		{"Total rewards", s.TotalRewards},
		{"Mining rate", s.MiningRate},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}

func shortHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:8] + "..." + hash[len(hash)-8:]
}
